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

func Send(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.email"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.EmailRequest
		if err := render.Bind(r, &req); err != nil {
			logger.With(sl.Err(err)).Debug("decode email request")
			errors.BadRequest(w, r, "Invalid request body")
			return
		}

		resp := handler.SendEmail(r.Context(), &req)
		logger.With(
			slog.String("email_type", req.EmailType),
			slog.Bool("email_sent", resp.EmailSent),
		).Info("send email")

		render.JSON(w, r, resp)
	}
}
