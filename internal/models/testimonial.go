package models

import "time"

// Testimonial is a customer review shown on the public site after approval.
type Testimonial struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Location    string    `gorm:"size:255" json:"location"`
	ProjectType string    `gorm:"size:50" json:"projectType"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Rating      int       `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5" json:"rating"`
	IsApproved  bool      `gorm:"not null;default:false" json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
