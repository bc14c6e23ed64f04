package apperrors

// Error codes grouped by domain.
const (
	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeConsultationNotFound ErrorCode = "CONSULTATION_NOT_FOUND"
	CodeTestimonialNotFound  ErrorCode = "TESTIMONIAL_NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
