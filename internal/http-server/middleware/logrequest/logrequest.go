package logrequest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"statica/internal/lib/sl"
	"statica/internal/metrics"
	"strconv"
	"time"
)

func New(log *slog.Logger) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.logrequest")
	log.With(mod).Info("request logger middleware initialized")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			remote := r.RemoteAddr
			// behind a proxy the client address is in X-Forwarded-For
			if xRemote := r.Header.Get("X-Forwarded-For"); xRemote != "" {
				remote = xRemote
			}
			logger := log.With(
				mod,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", remote),
				slog.String("request_id", id),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				metrics.HTTPRequests.WithLabelValues(r.Method, routePattern(r), strconv.Itoa(status)).Inc()
				logger.With(
					slog.Int("status", status),
					slog.Int("size", ww.BytesWritten()),
					slog.Float64("duration", time.Since(t1).Seconds()),
				).Info("incoming request")
			}()

			if id != "" {
				ww.Header().Set("X-Request-ID", id)
			}
			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}

// routePattern keeps metric labels bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
