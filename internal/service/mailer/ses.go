package mailer

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"statica/entity"
	"time"
)

type SESClient interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
	GetSendQuota(ctx context.Context, params *ses.GetSendQuotaInput, optFns ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error)
}

type SESSender struct {
	client SESClient
}

func NewSESSender(ctx context.Context, region string) (*SESSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESSender{client: ses.NewFromConfig(cfg)}, nil
}

func NewSESSenderWithClient(client SESClient) *SESSender {
	return &SESSender{client: client}
}

// Send submits the same MIME message the SMTP transport would produce.
func (s *SESSender) Send(ctx context.Context, msg *entity.MailMessage) error {
	raw, err := buildMessage(msg, time.Now())
	if err != nil {
		return err
	}
	_, err = s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		Destinations: []string{msg.To},
		Source:       aws.String(msg.FromEmail),
		RawMessage:   &types.RawMessage{Data: raw},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}

func (s *SESSender) Ping(ctx context.Context) error {
	if _, err := s.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{}); err != nil {
		return fmt.Errorf("ses quota: %w", err)
	}
	return nil
}
