package models

import "time"

// Consultation is a single lead submitted through the consultation form.
// Status is a free-text lifecycle label; the constants below are the values
// the frontend knows about, but any string is accepted.
type Consultation struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName         string    `gorm:"size:100;not null" json:"firstName"`
	LastName          string    `gorm:"size:100;not null;default:''" json:"lastName"`
	Email             string    `gorm:"size:255;not null" json:"email"`
	Phone             string    `gorm:"size:20;not null;default:''" json:"phone"`
	ProjectType       string    `gorm:"size:50" json:"projectType"`
	ProjectLocation   string    `gorm:"size:255" json:"projectLocation"`
	EstimatedBudget   string    `gorm:"size:50" json:"estimatedBudget"`
	PreferredTimeline string    `gorm:"size:50" json:"preferredTimeline"`
	ProjectDetails    string    `gorm:"type:text" json:"projectDetails"`
	Status            string    `gorm:"size:20;default:'NEW'" json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Consultation) TableName() string {
	return "consultations"
}

const (
	ConsultationStatusNew       = "NEW"
	ConsultationStatusContacted = "CONTACTED"
	ConsultationStatusScheduled = "SCHEDULED"
	ConsultationStatusClosed    = "CLOSED"
)
