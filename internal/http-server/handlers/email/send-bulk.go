package email

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"statica/entity"
	"statica/internal/http-server/handlers/errors"
	"statica/internal/lib/sl"
)

func SendBulk(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.email"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.BulkEmailRequest
		if err := render.Bind(r, &req); err != nil {
			logger.With(sl.Err(err)).Debug("decode bulk email request")
			errors.BadRequest(w, r, "Invalid request body")
			return
		}

		render.JSON(w, r, handler.SendBulkEmail(r.Context(), &req))
	}
}
