package services

import (
	"encoding/base64"
	"fmt"
	"strings"

	"stylehomes_backend/internal/dto"
	"stylehomes_backend/internal/email"
	"stylehomes_backend/internal/logger"
	"stylehomes_backend/internal/models"
)

// NotificationService renders and delivers the two consultation emails. Every
// delivery failure is logged and swallowed here; nothing propagates back to
// the request that triggered the send.
type NotificationService interface {
	SendConsultationConfirmation(consultation *models.Consultation)
	SendAdminNotification(consultation *models.Consultation, photos []dto.PhotoData)
}

type notificationService struct {
	sender     email.Sender
	adminEmail string
}

func NewNotificationService(sender email.Sender, adminEmail string) NotificationService {
	return &notificationService{
		sender:     sender,
		adminEmail: adminEmail,
	}
}

// SendConsultationConfirmation sends the plain-text acknowledgment to the
// customer. No attachments on this path.
func (s *notificationService) SendConsultationConfirmation(consultation *models.Consultation) {
	msg := &email.Email{
		To:      []string{consultation.Email},
		Subject: "Thank you for your consultation request - Style Homes",
		Body:    buildConfirmationBody(consultation),
	}

	if err := s.sender.Send(msg); err != nil {
		logger.Error("failed to send confirmation email",
			"consultation_id", consultation.ID,
			"to", consultation.Email,
			"error", err,
		)
		return
	}
	logger.Info("confirmation email sent", "consultation_id", consultation.ID, "to", consultation.Email)
}

// SendAdminNotification alerts the business operator. Photos are decoded and
// attached; a photo that fails to decode is skipped, and if the attachment
// send itself fails the plain-text variant goes out instead so the admin is
// notified regardless.
func (s *notificationService) SendAdminNotification(consultation *models.Consultation, photos []dto.PhotoData) {
	if len(photos) == 0 {
		s.sendPlainAdminNotification(consultation)
		return
	}

	attachments := make([]email.Attachment, 0, len(photos))
	for i, photo := range photos {
		content, err := base64.StdEncoding.DecodeString(photo.Data)
		if err != nil {
			logger.Error("failed to decode photo attachment, skipping",
				"consultation_id", consultation.ID,
				"filename", photo.Filename,
				"error", err,
			)
			continue
		}

		filename := photo.Filename
		if filename == "" {
			filename = fmt.Sprintf("photo_%d.jpg", i+1)
		}
		contentType := photo.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}

		attachments = append(attachments, email.Attachment{
			Name:        filename,
			Content:     content,
			ContentType: contentType,
		})
	}

	msg := &email.Email{
		To:          []string{s.adminEmail},
		Subject:     "New Consultation Request (with photos) - Style Homes",
		Body:        buildAdminBody(consultation, len(photos)),
		Attachments: attachments,
	}

	if err := s.sender.Send(msg); err != nil {
		logger.Error("failed to send admin notification with attachments, falling back to plain text",
			"consultation_id", consultation.ID,
			"error", err,
		)
		s.sendPlainAdminNotification(consultation)
		return
	}
	logger.Info("admin notification sent",
		"consultation_id", consultation.ID,
		"photos", len(photos),
		"attached", len(attachments),
	)
}

func (s *notificationService) sendPlainAdminNotification(consultation *models.Consultation) {
	msg := &email.Email{
		To:      []string{s.adminEmail},
		Subject: "New Consultation Request - Style Homes",
		Body:    buildAdminBody(consultation, 0),
	}

	if err := s.sender.Send(msg); err != nil {
		logger.Error("failed to send admin notification",
			"consultation_id", consultation.ID,
			"error", err,
		)
		return
	}
	logger.Info("admin notification sent", "consultation_id", consultation.ID)
}

func buildConfirmationBody(c *models.Consultation) string {
	return fmt.Sprintf(`Dear %s %s,

Thank you for contacting Style Homes! We have received your consultation request and will contact you shortly.

Your request details:
- Project Type: %s
- Location: %s
- Estimated Budget: %s
- Preferred Timeline: %s

We will review your request and get back to you within 24-48 hours.

Best regards,
Style Homes Team

--
Style Homes - Smart Investment | Quality Craftsmanship
Website: https://stylehomesusa.com
`,
		c.FirstName,
		c.LastName,
		orDefault(c.ProjectType, "Not specified"),
		orDefault(c.ProjectLocation, "Not specified"),
		orDefault(c.EstimatedBudget, "Not specified"),
		orDefault(c.PreferredTimeline, "Not specified"),
	)
}

func buildAdminBody(c *models.Consultation, photoCount int) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 59) + "\n"
	thin := strings.Repeat("-", 57) + "\n"

	sb.WriteString(rule)
	sb.WriteString("           NEW CONSULTATION REQUEST - STYLE HOMES\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	sb.WriteString("CUSTOMER INFORMATION:\n")
	sb.WriteString(thin)
	sb.WriteString(fmt.Sprintf("Name:      %s %s\n", c.FirstName, c.LastName))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", c.Email))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", orDefault(c.Phone, "Not provided")))
	sb.WriteString("\n")

	sb.WriteString("PROJECT DETAILS:\n")
	sb.WriteString(thin)
	sb.WriteString(fmt.Sprintf("Type:      %s\n", orDefault(c.ProjectType, "Not specified")))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", orDefault(c.ProjectLocation, "Not specified")))
	sb.WriteString(fmt.Sprintf("Budget:    %s\n", orDefault(c.EstimatedBudget, "Not specified")))
	sb.WriteString(fmt.Sprintf("Timeline:  %s\n", orDefault(c.PreferredTimeline, "Not specified")))
	sb.WriteString("\n")

	sb.WriteString("MESSAGE:\n")
	sb.WriteString(thin)
	sb.WriteString(c.ProjectDetails)
	sb.WriteString("\n\n")

	if photoCount > 0 {
		sb.WriteString(fmt.Sprintf("ATTACHED PHOTOS: %d file(s)\n", photoCount))
		sb.WriteString(thin)
		sb.WriteString("Photos are attached to this email.\n\n")
	}

	sb.WriteString(rule)
	sb.WriteString(fmt.Sprintf("Request ID: #%d\n", c.ID))
	sb.WriteString(fmt.Sprintf("Received:   %s\n", c.CreatedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(rule)

	return sb.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
