package core

import (
	"context"
	"log/slog"
	"statica/entity"
	"statica/internal/metrics"
	"statica/internal/templates"
)

const (
	msgMailerMissing = "Email service not configured"
	defaultTypeLabel = "default"
)

func (c *Core) SendEmail(ctx context.Context, req *entity.EmailRequest) *entity.EmailResponse {
	if c.mailer == nil {
		metrics.EmailsSent.WithLabelValues(typeLabel(req.EmailType), "failed").Inc()
		return &entity.EmailResponse{
			Message:   msgMailerMissing,
			Recipient: req.RecipientEmail,
			EmailType: req.EmailType,
		}
	}

	res := c.mailer.SendAutomatedEmail(ctx, req)
	metrics.EmailsSent.WithLabelValues(typeLabel(req.EmailType), emailStatus(res.EmailSent)).Inc()
	return res
}

func (c *Core) SendBulkEmail(ctx context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult {
	if c.mailer == nil {
		res := &entity.BulkEmailResult{
			Total:  len(req.RecipientEmails),
			Failed: len(req.RecipientEmails),
			Errors: make([]entity.BulkEmailError, 0, len(req.RecipientEmails)),
		}
		for _, address := range req.RecipientEmails {
			res.Errors = append(res.Errors, entity.BulkEmailError{Email: address, Error: msgMailerMissing})
		}
		metrics.EmailsSent.WithLabelValues(typeLabel(req.EmailType), "failed").Add(float64(res.Failed))
		return res
	}

	res := c.mailer.SendBulk(ctx, req)
	metrics.EmailsSent.WithLabelValues(typeLabel(req.EmailType), "sent").Add(float64(res.Successful))
	metrics.EmailsSent.WithLabelValues(typeLabel(req.EmailType), "failed").Add(float64(res.Failed))
	c.log.With(
		slog.String("email_type", req.EmailType),
		slog.Int("successful", res.Successful),
		slog.Int("failed", res.Failed),
	).Info("bulk email")
	return res
}

func (c *Core) EmailTemplates() []entity.TemplateInfo {
	if c.templates == nil {
		return []entity.TemplateInfo{}
	}
	return c.templates.Types()
}

// typeLabel keeps the email_type label to the catalogued set.
func typeLabel(emailType string) string {
	if templates.Known(emailType) {
		return emailType
	}
	return defaultTypeLabel
}

func emailStatus(sent bool) string {
	if sent {
		return "sent"
	}
	return "failed"
}
