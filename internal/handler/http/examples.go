package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-boilerplate/internal/utils"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

func (h *Handler) getExamples(w http.ResponseWriter, r *http.Request) error {
	examples, err := h.services.ExampleService.GetAllExamples(r.Context())
	if err != nil {
		return err
	}
	if examples == nil {
		examples = []models.Example{}
	}

	_, err = utils.WriteJSON(w, models.DataResponse[[]models.Example]{
		Message: msgExamplesRetrieved,
		Status:  models.StatusSuccess,
		Data:    examples,
	}, http.StatusOK)
	return err
}
