package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
)

// withTimeout cancels the request context after timeout. A handler that
// observes the cancellation and returns without writing gets the 504 error
// envelope; a response already under way is left untouched.
func (h *Handler) withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			if rw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}
			h.writeError(rw, r, apperr.NewTimeout(msgRequestTimeout))
		})
	}
}
