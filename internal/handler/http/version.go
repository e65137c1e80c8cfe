package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteJSON(w, serverVersion, http.StatusOK)
	return err
}
