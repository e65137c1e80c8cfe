package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
)

// withRecovery turns a panic of a downstream handler into a 500 envelope.
// http.ErrAbortHandler is re-panicked so that the server aborts the response.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			h.writeError(w, r, apperr.Wrap(apperr.ServerFailed, "", fmt.Errorf("panic: %v", rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
