package mailer

import (
	"bytes"
	"fmt"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
	"io"
	"statica/entity"
	"strings"
	"time"
)

// buildMessage encodes msg as multipart/alternative with plain text first.
func buildMessage(msg *entity.MailMessage, now time.Time) ([]byte, error) {
	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Name: msg.FromName, Address: msg.FromEmail}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	h.SetSubject(msg.Subject)
	h.SetMessageID(messageID(msg.FromEmail))

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("create inline: %w", err)
	}
	if err = writePart(tw, "text/plain", msg.TextBody); err != nil {
		return nil, err
	}
	if err = writePart(tw, "text/html", msg.HTMLBody); err != nil {
		return nil, err
	}
	if err = tw.Close(); err != nil {
		return nil, fmt.Errorf("close inline: %w", err)
	}
	if err = mw.Close(); err != nil {
		return nil, fmt.Errorf("close message: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(tw *mail.InlineWriter, contentType, body string) error {
	var ph mail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	w, err := tw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("create %s part: %w", contentType, err)
	}
	if _, err = io.WriteString(w, body); err != nil {
		return fmt.Errorf("write %s part: %w", contentType, err)
	}
	return w.Close()
}

func messageID(from string) string {
	domain := "statica.in"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		domain = from[i+1:]
	}
	return uuid.NewString() + "@" + domain
}
