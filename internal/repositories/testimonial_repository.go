package repositories

import (
	"errors"

	"stylehomes_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialRepository interface {
	Create(db *gorm.DB, testimonial *models.Testimonial) error
	FindByID(db *gorm.DB, id int64) (*models.Testimonial, error)
	FindAll(db *gorm.DB) ([]models.Testimonial, error)
	// FindApproved returns only testimonials cleared for the public site,
	// newest first.
	FindApproved(db *gorm.DB) ([]models.Testimonial, error)
	SetApproved(db *gorm.DB, id int64, approved bool) (*models.Testimonial, error)
	Delete(db *gorm.DB, id int64) error
}

type TestimonialRepositoryImpl struct{}

func NewTestimonialRepository() TestimonialRepository {
	return &TestimonialRepositoryImpl{}
}

func (r *TestimonialRepositoryImpl) Create(db *gorm.DB, testimonial *models.Testimonial) error {
	return db.Create(testimonial).Error
}

func (r *TestimonialRepositoryImpl) FindByID(db *gorm.DB, id int64) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := db.First(&testimonial, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepositoryImpl) FindAll(db *gorm.DB) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := db.Order("created_at DESC, id DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepositoryImpl) FindApproved(db *gorm.DB) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := db.Where("is_approved = ?", true).
		Order("created_at DESC, id DESC").
		Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepositoryImpl) SetApproved(db *gorm.DB, id int64, approved bool) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}

	testimonial.IsApproved = approved
	if err := db.Save(&testimonial).Error; err != nil {
		return nil, err
	}

	return &testimonial, nil
}

func (r *TestimonialRepositoryImpl) Delete(db *gorm.DB, id int64) error {
	result := db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}
