package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"statica/entity"
	"statica/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	chats  []*entity.ChatRequest
	emails []*entity.EmailRequest
}

func (f *fakeHandler) Chat(_ context.Context, req *entity.ChatRequest) *entity.ChatResponse {
	f.chats = append(f.chats, req)
	return &entity.ChatResponse{Response: "echo: " + req.Message, Success: true, AgentUsed: entity.SourceLocal}
}

func (f *fakeHandler) SendEmail(_ context.Context, req *entity.EmailRequest) *entity.EmailResponse {
	f.emails = append(f.emails, req)
	return &entity.EmailResponse{Success: true, EmailSent: true, Message: "sent", Recipient: req.RecipientEmail}
}

func (f *fakeHandler) SendBulkEmail(_ context.Context, req *entity.BulkEmailRequest) *entity.BulkEmailResult {
	return &entity.BulkEmailResult{Total: len(req.RecipientEmails), Successful: len(req.RecipientEmails), Errors: []entity.BulkEmailError{}}
}

func (f *fakeHandler) EmailTemplates() []entity.TemplateInfo {
	return []entity.TemplateInfo{{Type: "welcome", Name: "Welcome Email", Description: "New customer welcome email"}}
}

func newTestRouter(t *testing.T) (http.Handler, *fakeHandler) {
	t.Helper()
	conf := &config.Config{}
	conf.Listen.Timeout = 60
	conf.Listen.CorsOrigins = []string{"*"}

	handler := &fakeHandler{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(conf, log, handler), handler
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChat(t *testing.T) {
	router, handler := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "echo: hello", resp.Response)
	assert.True(t, resp.Success)
	assert.Equal(t, "local", resp.AgentUsed)

	require.Len(t, handler.chats, 1)
	assert.Equal(t, "product", handler.chats[0].AgentType)
}

func TestChat_BadBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/chat", `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestTestChat(t *testing.T) {
	router, handler := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/test-chat", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello", resp["your_message"])
	assert.Equal(t, "echo: Hello", resp["ai_response"])

	do(t, router, http.MethodGet, "/test-chat?message=rafale", "")
	require.Len(t, handler.chats, 2)
	assert.Equal(t, "rafale", handler.chats[1].Message)
}

func TestSendEmail(t *testing.T) {
	router, handler := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/send-email", `{"email_type":"welcome","recipient_email":"a@b.co","user_data":{"name":"Asha"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email_sent":true`)
	require.Len(t, handler.emails, 1)
	assert.Equal(t, "Asha", handler.emails[0].UserData["name"])

	rec = do(t, router, http.MethodPost, "/send-email", `{"recipient_email":"a@b.co"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendBulkEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/send-bulk-email", `{"email_type":"offer","recipient_emails":["a@b.co","c@d.co"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.BulkEmailResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)

	rec = do(t, router, http.MethodPost, "/send-bulk-email", `{"email_type":"offer","recipient_emails":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEmailTemplates(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/email-templates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"templates":[{"type":"welcome"`)
}

func TestServiceRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"running"`)

	rec = do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = do(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Requested resource not found")

	rec = do(t, router, http.MethodGet, "/chat", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "Method not allowed")
}

func TestCORS(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "https://statica.in")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
