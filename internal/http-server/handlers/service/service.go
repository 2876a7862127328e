package service

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

const version = "2.0.0"

type rootResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func Root(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, rootResponse{
			Message: "Statica.in AI Agent - Premium Aircraft Model Kits",
			Status:  "running",
			Version: version,
			Endpoints: map[string]string{
				"chat":       "POST /chat",
				"send_email": "POST /send-email",
				"bulk_email": "POST /send-bulk-email",
				"templates":  "GET /email-templates",
				"health":     "GET /health",
				"metrics":    "GET /metrics",
			},
		})
	}
}

func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, healthResponse{
			Status:    "healthy",
			Service:   "Statica AI Agent",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}
