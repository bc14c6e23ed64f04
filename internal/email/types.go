package email

// Email is an outgoing message.
type Email struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Attachment is a binary attachment with its declared content type.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Config holds the SMTP transport settings.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// Sender delivers email via an external mail transport.
type Sender interface {
	Send(email *Email) error
}
