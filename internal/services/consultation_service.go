package services

import (
	"context"

	"stylehomes_backend/internal/apperrors"
	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/logger"
	"stylehomes_backend/internal/models"
	"stylehomes_backend/internal/repositories"
	"stylehomes_backend/internal/workers"

	"gorm.io/gorm"
)

type ConsultationService interface {
	CreateConsultation(ctx context.Context, db *gorm.DB, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetAllConsultations(ctx context.Context, db *gorm.DB) ([]*dto.ConsultationResponse, error)
	GetConsultationsByStatus(ctx context.Context, db *gorm.DB, status string) ([]*dto.ConsultationResponse, error)
	GetConsultationByID(ctx context.Context, db *gorm.DB, id int64) (*dto.ConsultationResponse, error)
	UpdateConsultationStatus(ctx context.Context, db *gorm.DB, id int64, status string) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, db *gorm.DB, id int64) error
}

type consultationService struct {
	consultationRepo repositories.ConsultationRepository
	notifications    NotificationService
	dispatcher       *workers.NotificationWorker
}

func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	notifications NotificationService,
	dispatcher *workers.NotificationWorker,
) ConsultationService {
	return &consultationService{
		consultationRepo: consultationRepo,
		notifications:    notifications,
		dispatcher:       dispatcher,
	}
}

// CreateConsultation persists the request and schedules both notification
// emails. The response is built from the stored record; whether either email
// is actually delivered has no bearing on the result.
func (s *consultationService) CreateConsultation(ctx context.Context, db *gorm.DB, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	consultation := &models.Consultation{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		ProjectType:       req.ProjectType,
		ProjectLocation:   req.ProjectLocation,
		EstimatedBudget:   req.EstimatedBudget,
		PreferredTimeline: req.PreferredTimeline,
		ProjectDetails:    req.ProjectDetails,
		Status:            models.ConsultationStatusNew,
	}

	if err := s.consultationRepo.Create(db, consultation); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "created consultation", "consultation_id", consultation.ID, "photos", len(req.Photos))

	// The worker gets an immutable snapshot; the request can return before
	// either send happens.
	snapshot := *consultation
	photos := req.Photos
	s.dispatcher.Enqueue(func() {
		s.notifications.SendConsultationConfirmation(&snapshot)
	})
	s.dispatcher.Enqueue(func() {
		s.notifications.SendAdminNotification(&snapshot, photos)
	})

	return mapConsultationToResponse(consultation), nil
}

func (s *consultationService) GetAllConsultations(ctx context.Context, db *gorm.DB) ([]*dto.ConsultationResponse, error) {
	consultations, err := s.consultationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return mapConsultationsToResponses(consultations), nil
}

func (s *consultationService) GetConsultationsByStatus(ctx context.Context, db *gorm.DB, status string) ([]*dto.ConsultationResponse, error) {
	consultations, err := s.consultationRepo.FindByStatus(db, status)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return mapConsultationsToResponses(consultations), nil
}

func (s *consultationService) GetConsultationByID(ctx context.Context, db *gorm.DB, id int64) (*dto.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.ErrConsultationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return mapConsultationToResponse(consultation), nil
}

// UpdateConsultationStatus accepts any string as the new status; there is no
// closed set.
func (s *consultationService) UpdateConsultationStatus(ctx context.Context, db *gorm.DB, id int64, status string) (*dto.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.UpdateStatus(db, id, status)
	if err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return nil, apperrors.ErrConsultationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "updated consultation status", "consultation_id", id, "status", status)
	return mapConsultationToResponse(consultation), nil
}

func (s *consultationService) DeleteConsultation(ctx context.Context, db *gorm.DB, id int64) error {
	if err := s.consultationRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrConsultationNotFound) {
			return apperrors.ErrConsultationNotFound
		}
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "deleted consultation", "consultation_id", id)
	return nil
}

func mapConsultationToResponse(c *models.Consultation) *dto.ConsultationResponse {
	return &dto.ConsultationResponse{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		ProjectType:       c.ProjectType,
		ProjectLocation:   c.ProjectLocation,
		EstimatedBudget:   c.EstimatedBudget,
		PreferredTimeline: c.PreferredTimeline,
		ProjectDetails:    c.ProjectDetails,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func mapConsultationsToResponses(consultations []models.Consultation) []*dto.ConsultationResponse {
	responses := make([]*dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		responses = append(responses, mapConsultationToResponse(&consultations[i]))
	}
	return responses
}
