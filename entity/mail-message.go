package entity

import (
	"net/http"
	"statica/internal/lib/validate"
)

// EmailRequest asks for one templated email. Recipient format is checked by the mailer
// so that a bad address is reported as a result rather than a bind error.
type EmailRequest struct {
	EmailType      string                 `json:"email_type" validate:"required"`
	RecipientEmail string                 `json:"recipient_email" validate:"required"`
	Subject        string                 `json:"subject,omitempty" validate:"omitempty"`
	CustomMessage  string                 `json:"custom_message,omitempty" validate:"omitempty"`
	UserData       map[string]interface{} `json:"user_data,omitempty"`
}

func (m *EmailRequest) Bind(_ *http.Request) error {
	return validate.Struct(m)
}

type EmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
	Recipient string `json:"recipient"`
	EmailType string `json:"email_type,omitempty"`
}

type BulkEmailRequest struct {
	EmailType       string                 `json:"email_type" validate:"required"`
	RecipientEmails []string               `json:"recipient_emails" validate:"required,min=1"`
	CustomMessage   string                 `json:"custom_message,omitempty" validate:"omitempty"`
	UserData        map[string]interface{} `json:"user_data,omitempty"`
}

func (m *BulkEmailRequest) Bind(_ *http.Request) error {
	return validate.Struct(m)
}

type BulkEmailError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

type BulkEmailResult struct {
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []BulkEmailError `json:"errors"`
}

// MailMessage is a rendered email ready for a transport.
type MailMessage struct {
	FromName  string
	FromEmail string
	To        string
	Subject   string
	HTMLBody  string
	TextBody  string
}
