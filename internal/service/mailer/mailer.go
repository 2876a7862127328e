package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"statica/entity"
	"statica/internal/config"
	"statica/internal/lib/sl"
	"statica/internal/lib/validate"
	"strings"
	"time"
)

const (
	msgInvalidAddress = "Invalid email address"
	msgNotConfigured  = "Email service not configured"
)

var ErrNotConfigured = errors.New("email transport not configured")

// Sender delivers a rendered message over some transport.
type Sender interface {
	Send(ctx context.Context, msg *entity.MailMessage) error
	Ping(ctx context.Context) error
}

type Renderer interface {
	Render(emailType, customMessage string, fields map[string]interface{}) entity.EmailTemplate
}

type Service struct {
	fromName  string
	fromEmail string
	renderer  Renderer
	sender    Sender
	timeout   time.Duration
	log       *slog.Logger
}

// NewService builds the mail service with an SMTP transport when SMTP credentials are
// configured. Other transports are attached with SetSender.
func NewService(conf *config.Config, renderer Renderer, log *slog.Logger) *Service {
	timeout := conf.Mail.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	s := &Service{
		fromName:  conf.Mail.FromName,
		fromEmail: conf.Mail.FromEmail,
		renderer:  renderer,
		timeout:   timeout,
		log:       log.With(sl.Module("mailer")),
	}
	if conf.Mail.Username != "" && conf.Mail.Password != "" {
		s.sender = NewSMTPSender(conf)
	}
	return s
}

func (s *Service) SetSender(sender Sender) {
	s.sender = sender
}

func (s *Service) Configured() bool {
	return s.sender != nil
}

func IsValidEmail(address string) bool {
	return validate.Email(address)
}

// SendAutomatedEmail renders and sends one email. Every failure is reported in the
// returned response.
func (s *Service) SendAutomatedEmail(ctx context.Context, req *entity.EmailRequest) *entity.EmailResponse {
	recipient := strings.TrimSpace(req.RecipientEmail)
	log := s.log.With(
		slog.String("email_type", req.EmailType),
		sl.Secret("recipient", recipient),
	)

	result := &entity.EmailResponse{
		Recipient: recipient,
		EmailType: req.EmailType,
	}

	if !IsValidEmail(recipient) {
		result.Message = msgInvalidAddress
		return result
	}
	if !s.Configured() {
		log.Warn("email transport not configured")
		result.Message = msgNotConfigured
		return result
	}

	tpl := s.renderer.Render(req.EmailType, req.CustomMessage, req.UserData)
	subject := tpl.Subject
	if strings.TrimSpace(req.Subject) != "" {
		subject = strings.TrimSpace(req.Subject)
	}

	msg := &entity.MailMessage{
		FromName:  s.fromName,
		FromEmail: s.fromEmail,
		To:        recipient,
		Subject:   subject,
		HTMLBody:  tpl.HTMLBody,
		TextBody:  tpl.TextBody,
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		log.With(sl.Err(err)).Error("send email")
		result.Message = fmt.Sprintf("Failed to send email: %v", err)
		return result
	}

	log.Info("email sent")
	result.Success = true
	result.EmailSent = true
	result.Message = fmt.Sprintf("Email sent successfully to %s", recipient)
	return result
}

// SendBulk sends to each recipient in order and keeps going past failures. Each
// recipient gets its own timeout so a slow transport cannot starve the rest of
// the batch once the request deadline passes.
func (s *Service) SendBulk(ctx context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult {
	result := &entity.BulkEmailResult{
		Total:  len(req.RecipientEmails),
		Errors: []entity.BulkEmailError{},
	}

	for _, address := range req.RecipientEmails {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		res := s.SendAutomatedEmail(rctx, &entity.EmailRequest{
			EmailType:      req.EmailType,
			RecipientEmail: address,
			CustomMessage:  req.CustomMessage,
			UserData:       req.UserData,
		})
		cancel()
		if res.EmailSent {
			result.Successful++
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, entity.BulkEmailError{
			Email: address,
			Error: res.Message,
		})
	}

	s.log.With(
		slog.String("email_type", req.EmailType),
		slog.Int("total", result.Total),
		slog.Int("failed", result.Failed),
	).Info("bulk email finished")
	return result
}

// TestConnection checks that the configured transport is reachable.
func (s *Service) TestConnection(ctx context.Context) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.sender.Ping(ctx)
}
