package database

import (
	"stylehomes_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Consultation{},
		&models.Testimonial{},
	)
}
