package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		return err
	}

	user, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg("user successfully registered")

	_, err = utils.WriteMessage(w, msgUserCreated, models.StatusSuccess, http.StatusCreated)
	return err
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	credentials, err := decodeCredentials(w, r)
	if err != nil {
		return err
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.TokenResponse{
		Message:     msgLoginSuccess,
		Status:      models.StatusSuccess,
		AccessToken: token.SignedString,
		ExpiresIn:   token.ExpiresInSeconds(),
	}, http.StatusCreated)
	return err
}
