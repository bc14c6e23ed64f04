package validator

import (
	"regexp"

	"stylehomes_backend/internal/logger"

	"github.com/go-playground/validator/v10"
)

// Digits, spaces, hyphens, parentheses and a plus sign. Matches what the
// consultation form lets through.
var phoneRegexp = regexp.MustCompile(`^[0-9\s\-()+]+$`)

// registerCustomRules registers the custom validation rules. A registration
// failure is a startup error, so it is fatal.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			logger.Fatal("failed to register custom validation tag", "tag", tag, "error", err)
		}
	}

	// 'phone': allowed character set for phone numbers. Combine with
	// omitempty for optional fields.
	mustRegister("phone", validatePhone)

	// 'rating': 1 to 5 stars.
	mustRegister("rating", validateRating)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

func validateRating(fl validator.FieldLevel) bool {
	rating := fl.Field().Int()
	return rating >= 1 && rating <= 5
}
