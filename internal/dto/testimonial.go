package dto

import "time"

// CreateTestimonialRequest is the public testimonial submission payload.
// New testimonials land unapproved and stay off the site until reviewed.
type CreateTestimonialRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location"`
	ProjectType string `json:"projectType"`
	Content     string `json:"content" validate:"required"`
	Rating      int    `json:"rating" validate:"omitempty,rating"`
}

type TestimonialResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	ProjectType string    `json:"projectType"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
