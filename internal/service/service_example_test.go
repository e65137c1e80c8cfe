package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/mock"
	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAllExamples(t *testing.T) {
	description := "second"

	t.Run("returns stored examples", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockExampleRepository(ctrl)
		want := []models.Example{
			{ID: "e-1", Title: "first"},
			{ID: "e-2", Title: "second", Description: &description},
		}
		repo.EXPECT().GetAllExamples(gomock.Any()).Return(want, nil)

		got, err := NewExampleService(repo, logger.Nop()).GetAllExamples(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockExampleRepository(ctrl)
		repo.EXPECT().GetAllExamples(gomock.Any()).Return(nil, errors.New("boom"))

		got, err := NewExampleService(repo, logger.Nop()).GetAllExamples(context.Background())

		assert.Nil(t, got)
		requireAppErr(t, err, http.StatusInternalServerError, "Failed to retrieve examples.")
	})
}
