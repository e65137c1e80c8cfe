package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// getProfile serves the authenticated user's own record without credentials.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, payload models.TokenPayload) error {
	profile, err := h.services.UserService.Profile(r.Context(), payload)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.DataResponse[models.Profile]{
		Message: msgUserData,
		Status:  models.StatusSuccess,
		Data:    profile,
	}, http.StatusOK)
	return err
}
