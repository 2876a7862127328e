package chat

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"statica/entity"
	"strings"
)

type testChatResponse struct {
	YourMessage string `json:"your_message"`
	AiResponse  string `json:"ai_response"`
	Success     bool   `json:"success"`
	AgentUsed   string `json:"agent_used"`
}

// TestChat answers ?message= with the product agent, "Hello" when the parameter is absent.
func TestChat(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message := strings.TrimSpace(r.URL.Query().Get("message"))
		if message == "" {
			message = "Hello"
		}

		resp := handler.Chat(r.Context(), &entity.ChatRequest{
			Message:   message,
			AgentType: string(entity.AgentProduct),
		})

		render.JSON(w, r, testChatResponse{
			YourMessage: message,
			AiResponse:  resp.Response,
			Success:     resp.Success,
			AgentUsed:   resp.AgentUsed,
		})
	}
}
