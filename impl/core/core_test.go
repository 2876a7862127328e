package core

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"statica/ai/compose"
	"statica/ai/intent"
	"statica/entity"
	"statica/internal/catalog"
	"statica/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text   string
	ok     bool
	calls  int
	system string
}

func (f *fakeGenerator) TryGenerate(_ context.Context, _ string, systemPrompt string) (string, bool) {
	f.calls++
	f.system = systemPrompt
	return f.text, f.ok
}

type panicComposer struct{}

func (panicComposer) Compose(intent.Intent, string) string {
	panic("boom")
}

type fakeMailer struct {
	requests []*entity.EmailRequest
}

func (f *fakeMailer) SendAutomatedEmail(_ context.Context, req *entity.EmailRequest) *entity.EmailResponse {
	f.requests = append(f.requests, req)
	return &entity.EmailResponse{Success: true, EmailSent: true, Recipient: req.RecipientEmail}
}

func (f *fakeMailer) SendBulk(_ context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult {
	return &entity.BulkEmailResult{Total: len(req.RecipientEmails), Successful: len(req.RecipientEmails), Errors: []entity.BulkEmailError{}}
}

type fakeTemplates struct{}

func (fakeTemplates) Types() []entity.TemplateInfo {
	return []entity.TemplateInfo{{Type: "welcome", Name: "Welcome Email"}}
}

func newTestCore() *Core {
	cat := catalog.Default()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cat, compose.New(cat), log)
}

func TestChat_Local(t *testing.T) {
	c := newTestCore()

	resp := c.Chat(context.Background(), &entity.ChatRequest{Message: "What is the price of the virus 30cm kit?"})

	assert.True(t, resp.Success)
	assert.Equal(t, entity.SourceLocal, resp.AgentUsed)
	assert.Contains(t, resp.Response, "₹3,499.00")
}

func TestChat_EmptyMessage(t *testing.T) {
	c := newTestCore()

	resp := c.Chat(context.Background(), &entity.ChatRequest{})

	assert.True(t, resp.Success)
	assert.Equal(t, entity.SourceLocal, resp.AgentUsed)
	assert.NotEmpty(t, resp.Response)
}

func TestChat_Remote(t *testing.T) {
	c := newTestCore()
	gen := &fakeGenerator{text: "The Skybee is a great first flyer.", ok: true}
	c.SetGenerator(gen)

	resp := c.Chat(context.Background(), &entity.ChatRequest{Message: "which plane should I fly first?", AgentType: "support"})

	assert.True(t, resp.Success)
	assert.Equal(t, entity.SourceRemote, resp.AgentUsed)
	assert.Equal(t, "The Skybee is a great first flyer.", resp.Response)
	assert.Equal(t, 1, gen.calls)
	assert.NotEmpty(t, gen.system)
}

func TestChat_RemoteDeclined(t *testing.T) {
	c := newTestCore()
	gen := &fakeGenerator{ok: false}
	c.SetGenerator(gen)

	resp := c.Chat(context.Background(), &entity.ChatRequest{Message: "hello"})

	assert.Equal(t, 1, gen.calls)
	assert.True(t, resp.Success)
	assert.Equal(t, entity.SourceLocal, resp.AgentUsed)
	assert.NotEmpty(t, resp.Response)
}

func TestChat_PanicRecovered(t *testing.T) {
	cat := catalog.Default()
	c := New(cat, panicComposer{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	resp := c.Chat(context.Background(), &entity.ChatRequest{Message: "hello"})

	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, entity.SourceFallback, resp.AgentUsed)
	assert.True(t, strings.HasPrefix(resp.Response, "I apologize"))
	assert.Contains(t, resp.Response, "support@statica.in")
}

func TestSendEmail(t *testing.T) {
	c := newTestCore()

	res := c.SendEmail(context.Background(), &entity.EmailRequest{EmailType: "welcome", RecipientEmail: "a@b.co"})
	assert.False(t, res.EmailSent)
	assert.Equal(t, "Email service not configured", res.Message)

	mailer := &fakeMailer{}
	c.SetMailer(mailer)
	res = c.SendEmail(context.Background(), &entity.EmailRequest{EmailType: "welcome", RecipientEmail: "a@b.co"})
	assert.True(t, res.EmailSent)
	assert.Len(t, mailer.requests, 1)
}

func TestSendEmail_UnknownTypesShareOneSeries(t *testing.T) {
	c := newTestCore()
	c.SetMailer(&fakeMailer{})

	defaults := testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("default", "sent"))
	series := testutil.CollectAndCount(metrics.EmailsSent)

	c.SendEmail(context.Background(), &entity.EmailRequest{EmailType: "made-up-1", RecipientEmail: "a@b.co"})
	c.SendEmail(context.Background(), &entity.EmailRequest{EmailType: "made-up-2", RecipientEmail: "a@b.co"})

	assert.Equal(t, series, testutil.CollectAndCount(metrics.EmailsSent))
	assert.Equal(t, defaults+2, testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("default", "sent")))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "welcome", typeLabel("welcome"))
	assert.Equal(t, "default", typeLabel("<script>"))
	assert.Equal(t, "default", typeLabel(""))
}

func TestSendBulkEmail_NoMailer(t *testing.T) {
	c := newTestCore()

	res := c.SendBulkEmail(context.Background(), &entity.BulkEmailRequest{
		EmailType:       "offer",
		RecipientEmails: []string{"a@b.co", "c@d.co"},
	})

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, res.Failed)
	assert.Len(t, res.Errors, 2)
}

func TestEmailTemplates(t *testing.T) {
	c := newTestCore()
	assert.Empty(t, c.EmailTemplates())

	c.SetTemplates(fakeTemplates{})
	assert.Len(t, c.EmailTemplates(), 1)
}
