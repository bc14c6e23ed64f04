package dto

import "time"

// CreateConsultationRequest is the intake form payload.
type CreateConsultationRequest struct {
	FirstName         string      `json:"firstName" validate:"required"`
	LastName          string      `json:"lastName"`
	Email             string      `json:"email" validate:"required,email"`
	Phone             string      `json:"phone" validate:"omitempty,phone"`
	ProjectType       string      `json:"projectType"`
	ProjectLocation   string      `json:"projectLocation"`
	EstimatedBudget   string      `json:"estimatedBudget"`
	PreferredTimeline string      `json:"preferredTimeline"`
	ProjectDetails    string      `json:"projectDetails" validate:"required"`
	Photos            []PhotoData `json:"photos"`
}

// PhotoData is a photo sent with the form as a base64 string. It is only
// carried through to the admin notification, never persisted.
type PhotoData struct {
	// Original filename, defaulted when absent.
	Filename string `json:"filename"`
	// MIME type (e.g. "image/jpeg"), defaulted when absent.
	ContentType string `json:"contentType"`
	// Base64 encoded photo bytes, without a data: prefix.
	Data string `json:"data" validate:"required"`
	// Declared size in bytes.
	Size int64 `json:"size"`
}

// ConsultationResponse is the outward record shape.
type ConsultationResponse struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	ProjectType       string    `json:"projectType"`
	ProjectLocation   string    `json:"projectLocation"`
	EstimatedBudget   string    `json:"estimatedBudget"`
	PreferredTimeline string    `json:"preferredTimeline"`
	ProjectDetails    string    `json:"projectDetails"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
