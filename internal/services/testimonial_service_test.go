package services

import (
	"context"
	"testing"

	"stylehomes_backend/internal/apperrors"
	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestimonialService() TestimonialService {
	return NewTestimonialService(repositories.NewTestimonialRepository())
}

func TestCreateTestimonial_DefaultsRatingToFive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestimonialService()

	resp, err := svc.CreateTestimonial(context.Background(), db, &dto.CreateTestimonialRequest{
		Name:    "John",
		Content: "Great crew, on time and on budget",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, 5, resp.Rating)
	assert.False(t, resp.IsApproved)
}

func TestApproveTestimonial(t *testing.T) {
	db := newTestDB(t)
	svc := newTestimonialService()

	created, err := svc.CreateTestimonial(context.Background(), db, &dto.CreateTestimonialRequest{
		Name:    "John",
		Content: "Great crew",
		Rating:  4,
	})
	require.NoError(t, err)

	// Not public until approved.
	public, err := svc.GetApprovedTestimonials(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, public)

	approved, err := svc.ApproveTestimonial(context.Background(), db, created.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	public, err = svc.GetApprovedTestimonials(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)

	_, err = svc.ApproveTestimonial(context.Background(), db, created.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrTestimonialNotFound)
}

func TestDeleteTestimonial(t *testing.T) {
	db := newTestDB(t)
	svc := newTestimonialService()

	created, err := svc.CreateTestimonial(context.Background(), db, &dto.CreateTestimonialRequest{
		Name:    "John",
		Content: "Great crew",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTestimonial(context.Background(), db, created.ID))
	assert.ErrorIs(t, svc.DeleteTestimonial(context.Background(), db, created.ID), apperrors.ErrTestimonialNotFound)
}
