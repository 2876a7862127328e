package email

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"statica/entity"
)

type templatesResponse struct {
	Templates []entity.TemplateInfo `json:"templates"`
}

func Templates(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, templatesResponse{Templates: handler.EmailTemplates()})
	}
}
