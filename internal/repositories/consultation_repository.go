package repositories

import (
	"errors"

	"stylehomes_backend/internal/models"

	"gorm.io/gorm"
)

var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *models.Consultation) error
	FindByID(db *gorm.DB, id int64) (*models.Consultation, error)
	// FindAll returns every record, newest first.
	FindAll(db *gorm.DB) ([]models.Consultation, error)
	// FindByStatus filters by status, newest first.
	FindByStatus(db *gorm.DB, status string) ([]models.Consultation, error)
	UpdateStatus(db *gorm.DB, id int64, status string) (*models.Consultation, error)
	Delete(db *gorm.DB, id int64) error
}

type ConsultationRepositoryImpl struct{}

func NewConsultationRepository() ConsultationRepository {
	return &ConsultationRepositoryImpl{}
}

func (r *ConsultationRepositoryImpl) Create(db *gorm.DB, consultation *models.Consultation) error {
	return db.Create(consultation).Error
}

func (r *ConsultationRepositoryImpl) FindByID(db *gorm.DB, id int64) (*models.Consultation, error) {
	var consultation models.Consultation
	err := db.First(&consultation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &consultation, nil
}

// The id tiebreaker keeps the ordering stable when two rows share a
// creation timestamp.
func (r *ConsultationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := db.Order("created_at DESC, id DESC").Find(&consultations).Error
	return consultations, err
}

func (r *ConsultationRepositoryImpl) FindByStatus(db *gorm.DB, status string) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := db.Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&consultations).Error
	return consultations, err
}

// UpdateStatus always writes through, even when the status is unchanged, so
// updated_at advances on every call.
func (r *ConsultationRepositoryImpl) UpdateStatus(db *gorm.DB, id int64, status string) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := db.First(&consultation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}

	consultation.Status = status
	if err := db.Save(&consultation).Error; err != nil {
		return nil, err
	}

	return &consultation, nil
}

// Delete removes the record permanently. Deleting an unknown id is an error,
// not a silent success.
func (r *ConsultationRepositoryImpl) Delete(db *gorm.DB, id int64) error {
	result := db.Where("id = ?", id).Delete(&models.Consultation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConsultationNotFound
	}
	return nil
}
