package services

import (
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/email"
	"stylehomes_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records every message handed to it. failWithAttachments makes
// only the attachment-carrying sends fail, which exercises the plain-text
// fallback path.
type fakeSender struct {
	mu                  sync.Mutex
	sent                []*email.Email
	failAll             bool
	failWithAttachments bool
}

func (f *fakeSender) Send(msg *email.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	if f.failWithAttachments && len(msg.Attachments) > 0 {
		return errors.New("message too large")
	}
	return nil
}

func (f *fakeSender) messages() []*email.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*email.Email, len(f.sent))
	copy(out, f.sent)
	return out
}

func sampleConsultation() *models.Consultation {
	return &models.Consultation{
		ID:             7,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		ProjectDetails: "Add a second floor",
		Status:         models.ConsultationStatusNew,
		CreatedAt:      time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestSendConsultationConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	svc.SendConsultationConfirmation(sampleConsultation())

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"jane@example.com"}, msgs[0].To)
	assert.Equal(t, "Thank you for your consultation request - Style Homes", msgs[0].Subject)
	assert.Empty(t, msgs[0].Attachments)
	assert.Contains(t, msgs[0].Body, "Dear Jane Doe,")
	// Unset project fields render as "Not specified".
	assert.Contains(t, msgs[0].Body, "Project Type: Not specified")
	assert.Contains(t, msgs[0].Body, "Estimated Budget: Not specified")
}

func TestSendConsultationConfirmation_FilledFields(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	c := sampleConsultation()
	c.ProjectType = "New Construction"
	c.ProjectLocation = "Dallas, TX"
	c.EstimatedBudget = "$250k-$500k"
	c.PreferredTimeline = "3-6 months"
	svc.SendConsultationConfirmation(c)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Body, "Project Type: New Construction")
	assert.Contains(t, msgs[0].Body, "Location: Dallas, TX")
	assert.Contains(t, msgs[0].Body, "Estimated Budget: $250k-$500k")
	assert.Contains(t, msgs[0].Body, "Preferred Timeline: 3-6 months")
}

func TestSendConsultationConfirmation_SenderFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{failAll: true}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	// Must not panic; the failure is only logged.
	svc.SendConsultationConfirmation(sampleConsultation())
	assert.Len(t, sender.messages(), 1)
}

func TestSendAdminNotification_WithoutPhotos(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	svc.SendAdminNotification(sampleConsultation(), nil)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"admin@stylehomesusa.com"}, msgs[0].To)
	assert.Equal(t, "New Consultation Request - Style Homes", msgs[0].Subject)
	assert.Empty(t, msgs[0].Attachments)
	assert.Contains(t, msgs[0].Body, "Name:      Jane Doe")
	assert.Contains(t, msgs[0].Body, "Phone:     Not provided")
	assert.Contains(t, msgs[0].Body, "Add a second floor")
	assert.Contains(t, msgs[0].Body, "Request ID: #7")
	assert.Contains(t, msgs[0].Body, "Received:   2026-02-14 09:30:00")
	assert.NotContains(t, msgs[0].Body, "ATTACHED PHOTOS")
}

func TestSendAdminNotification_SkipsUndecodablePhotos(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	photos := []dto.PhotoData{
		{Filename: "kitchen.png", ContentType: "image/png", Data: base64.StdEncoding.EncodeToString([]byte("png-bytes"))},
		{Data: "%%% not base64 %%%"},
		{Data: base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))},
	}
	svc.SendAdminNotification(sampleConsultation(), photos)

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "New Consultation Request (with photos) - Style Homes", msgs[0].Subject)
	require.Len(t, msgs[0].Attachments, 2)

	assert.Equal(t, "kitchen.png", msgs[0].Attachments[0].Name)
	assert.Equal(t, "image/png", msgs[0].Attachments[0].ContentType)
	assert.Equal(t, []byte("png-bytes"), msgs[0].Attachments[0].Content)

	// Missing metadata falls back to a positional jpeg name.
	assert.Equal(t, "photo_3.jpg", msgs[0].Attachments[1].Name)
	assert.Equal(t, "image/jpeg", msgs[0].Attachments[1].ContentType)

	assert.Contains(t, msgs[0].Body, "ATTACHED PHOTOS: 3 file(s)")
}

func TestSendAdminNotification_FallsBackToPlainText(t *testing.T) {
	sender := &fakeSender{failWithAttachments: true}
	svc := NewNotificationService(sender, "admin@stylehomesusa.com")

	photos := []dto.PhotoData{
		{Filename: "site.jpg", Data: base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))},
	}
	svc.SendAdminNotification(sampleConsultation(), photos)

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "New Consultation Request (with photos) - Style Homes", msgs[0].Subject)
	require.Len(t, msgs[0].Attachments, 1)

	assert.Equal(t, "New Consultation Request - Style Homes", msgs[1].Subject)
	assert.Empty(t, msgs[1].Attachments)
	assert.NotContains(t, msgs[1].Body, "ATTACHED PHOTOS")
}
