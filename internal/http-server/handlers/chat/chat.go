package chat

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"statica/entity"
	"statica/internal/http-server/handlers/errors"
	"statica/internal/lib/sl"
)

func Chat(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.chat"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.ChatRequest
		if err := render.Bind(r, &req); err != nil {
			logger.With(sl.Err(err)).Debug("decode chat request")
			errors.BadRequest(w, r, "Invalid request body")
			return
		}

		resp := handler.Chat(r.Context(), &req)
		logger.With(
			slog.String("agent_type", req.AgentType),
			slog.String("agent_used", resp.AgentUsed),
			slog.Bool("success", resp.Success),
		).Debug("chat")

		render.JSON(w, r, resp)
	}
}
