package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// authenticatedHandlerFunc is a handler that runs only for verified callers.
// The verified token payload is passed explicitly.
type authenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, payload models.TokenPayload) error

// authenticated enforces JWT-based authentication in front of next.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// and verifies it via [service.AuthService.Authenticate]:
//   - a missing header is rejected with 401 Unauthorized;
//   - a header without a token, or a token that fails verification for any
//     reason (malformed, bad signature, expired), is rejected with 403
//     Forbidden and the same message;
//   - otherwise next runs with the verified payload.
func (h *Handler) authenticated(next authenticatedHandlerFunc) http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return apperr.NewUnauthorized(msgAuthHeaderMissing)
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return apperr.Wrap(apperr.Forbidden, msgInvalidToken, err)
		}

		payload, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			return err
		}

		return next(w, r, payload)
	})
}
