package email

import (
	"context"
	"statica/entity"
)

type Core interface {
	SendEmail(ctx context.Context, req *entity.EmailRequest) *entity.EmailResponse
	SendBulkEmail(ctx context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult
	EmailTemplates() []entity.TemplateInfo
}
