package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// handlerFunc is an HTTP handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], sending any returned error through
// the boundary translator.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.writeError(w, r, err)
		}
	}
}

// writeError is the boundary translator: it converts any error into the
// {message, status, stack?} envelope. Errors outside the taxonomy become a
// generic 500. The stack is only included in development.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	appErr := apperr.From(err)

	if appErr.Kind == apperr.ServerFailed {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("uri", r.RequestURI).Int("status", appErr.HTTPStatus()).Msg("request rejected")
	}

	response := models.ErrorResponse{
		Message: appErr.Message,
		Status:  appErr.Status(),
	}
	if h.app.IsDevelopment() {
		response.Stack = appErr.Stack()
	}

	if _, werr := utils.WriteJSON(w, response, appErr.HTTPStatus()); werr != nil {
		log.Err(werr).Msg("failed to write error response")
	}
}
