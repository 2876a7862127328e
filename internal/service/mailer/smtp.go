package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"statica/entity"
	"statica/internal/config"
	"strconv"
	"time"
)

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

func NewSMTPSender(conf *config.Config) *SMTPSender {
	timeout := conf.Mail.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SMTPSender{
		host:     conf.Mail.Server,
		port:     conf.Mail.Port,
		username: conf.Mail.Username,
		password: conf.Mail.Password,
		timeout:  timeout,
	}
}

// dial opens an authenticated session. The whole exchange shares one deadline, the
// earlier of the configured timeout and the context deadline.
func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	dialer := &net.Dialer{Deadline: deadline}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if err = conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("smtp handshake: %w", err)
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}
	if err = c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("auth: %w", err)
	}
	return c, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg *entity.MailMessage) error {
	raw, err := buildMessage(msg, time.Now())
	if err != nil {
		return err
	}

	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err = c.Mail(msg.FromEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err = c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(raw); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}

func (s *SMTPSender) Ping(ctx context.Context) error {
	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Quit()
}
