package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"statica/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		preserveLinks bool
		want          string
	}{
		{"plain", "hello", false, "hello"},
		{"price", "₹3,499.00", false, `₹3,499\.00`},
		{"bold kept", "*Price:* 10", false, "*Price:* 10"},
		{"link escaped", "[site](https://statica.in)", false, `\[site\]\(https://statica\.in\)`},
		{"link preserved", "[site](https://statica.in)", true, `[site](https://statica\.in)`},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.input, tt.preserveLinks))
		})
	}
}

type fakeChat struct {
	requests []*entity.ChatRequest
}

func (f *fakeChat) Chat(_ context.Context, req *entity.ChatRequest) *entity.ChatResponse {
	f.requests = append(f.requests, req)
	return &entity.ChatResponse{Response: "answer to " + req.Message, Success: true, AgentUsed: entity.SourceLocal}
}

func TestAnswer(t *testing.T) {
	tb := &TgBot{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	assert.Equal(t, "Chat is not available right now.", tb.answer("hi"))

	chat := &fakeChat{}
	tb.SetChatService(chat)
	assert.Equal(t, "answer to which kit for NCC?", tb.answer("which kit for NCC?"))

	require.Len(t, chat.requests, 1)
	assert.Equal(t, "product", chat.requests[0].AgentType)
}
