package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

func (h *Handler) redirectToAPI(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.app.APIPrefix(), http.StatusFound)
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteMessage(w, msgWelcome, models.StatusSuccess, http.StatusOK)
	return err
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperr.NewNotFound(notFoundMessage(r.RequestURI)))
}
