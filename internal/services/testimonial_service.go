package services

import (
	"context"

	"stylehomes_backend/internal/apperrors"
	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/logger"
	"stylehomes_backend/internal/models"
	"stylehomes_backend/internal/repositories"

	"gorm.io/gorm"
)

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	// GetApprovedTestimonials returns what the public site shows.
	GetApprovedTestimonials(ctx context.Context, db *gorm.DB) ([]*dto.TestimonialResponse, error)
	GetAllTestimonials(ctx context.Context, db *gorm.DB) ([]*dto.TestimonialResponse, error)
	ApproveTestimonial(ctx context.Context, db *gorm.DB, id int64) (*dto.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, db *gorm.DB, id int64) error
}

type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
	}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	testimonial := &models.Testimonial{
		Name:        req.Name,
		Location:    req.Location,
		ProjectType: req.ProjectType,
		Content:     req.Content,
		Rating:      rating,
		IsApproved:  false,
	}

	if err := s.testimonialRepo.Create(db, testimonial); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "created testimonial", "testimonial_id", testimonial.ID)

	return mapTestimonialToResponse(testimonial), nil
}

func (s *testimonialService) GetApprovedTestimonials(ctx context.Context, db *gorm.DB) ([]*dto.TestimonialResponse, error) {
	testimonials, err := s.testimonialRepo.FindApproved(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return mapTestimonialsToResponses(testimonials), nil
}

func (s *testimonialService) GetAllTestimonials(ctx context.Context, db *gorm.DB) ([]*dto.TestimonialResponse, error) {
	testimonials, err := s.testimonialRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return mapTestimonialsToResponses(testimonials), nil
}

func (s *testimonialService) ApproveTestimonial(ctx context.Context, db *gorm.DB, id int64) (*dto.TestimonialResponse, error) {
	testimonial, err := s.testimonialRepo.SetApproved(db, id, true)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTestimonialNotFound) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "approved testimonial", "testimonial_id", id)
	return mapTestimonialToResponse(testimonial), nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, db *gorm.DB, id int64) error {
	if err := s.testimonialRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrTestimonialNotFound) {
			return apperrors.ErrTestimonialNotFound
		}
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "deleted testimonial", "testimonial_id", id)
	return nil
}

func mapTestimonialToResponse(t *models.Testimonial) *dto.TestimonialResponse {
	return &dto.TestimonialResponse{
		ID:          t.ID,
		Name:        t.Name,
		Location:    t.Location,
		ProjectType: t.ProjectType,
		Content:     t.Content,
		Rating:      t.Rating,
		IsApproved:  t.IsApproved,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func mapTestimonialsToResponses(testimonials []models.Testimonial) []*dto.TestimonialResponse {
	responses := make([]*dto.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		responses = append(responses, mapTestimonialToResponse(&testimonials[i]))
	}
	return responses
}
