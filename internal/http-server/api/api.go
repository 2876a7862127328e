package api

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net"
	"net/http"
	"statica/internal/config"
	"statica/internal/http-server/handlers/chat"
	"statica/internal/http-server/handlers/email"
	"statica/internal/http-server/handlers/errors"
	"statica/internal/http-server/handlers/service"
	"statica/internal/http-server/middleware/logrequest"
	"statica/internal/http-server/middleware/timeout"
	"statica/internal/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	chat.Core
	email.Core
}

func NewRouter(conf *config.Config, log *slog.Logger, handler Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logrequest.New(log))
	router.Use(timeout.Timeout(conf.Listen.Timeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.Listen.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/", service.Root(log))
		r.Get("/health", service.Health(log))

		r.Post("/chat", chat.Chat(log, handler))
		r.Get("/test-chat", chat.TestChat(log, handler))

		r.Post("/send-email", email.Send(log, handler))
		r.Post("/send-bulk-email", email.SendBulk(log, handler))
		r.Get("/email-templates", email.Templates(log, handler))
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(conf, log, handler),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
