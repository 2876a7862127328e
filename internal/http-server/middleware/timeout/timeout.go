package timeout

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"net/http"
	"statica/internal/lib/api/response"
	"time"
)

// Timeout bounds the request context. When the deadline passes before the handler has
// written anything, a 504 envelope is returned. A non-positive value disables the bound.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	d := time.Duration(seconds) * time.Second

	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				render.Status(r, http.StatusGatewayTimeout)
				render.JSON(ww, r, response.Error("Request timed out"))
			}
		}
		return http.HandlerFunc(fn)
	}
}
