package service

import (
	"context"

	"github.com/MKhiriev/go-rest-boilerplate/internal/apperr"
	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/store"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

type exampleService struct {
	exampleRepository store.ExampleRepository

	logger *logger.Logger
}

func NewExampleService(exampleRepository store.ExampleRepository, logger *logger.Logger) ExampleService {
	return &exampleService{
		exampleRepository: exampleRepository,
		logger:            logger,
	}
}

func (s *exampleService) GetAllExamples(ctx context.Context) ([]models.Example, error) {
	examples, err := s.exampleRepository.GetAllExamples(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to fetch examples")
		return nil, apperr.Wrap(apperr.ServerFailed, msgExamplesFailed, err)
	}

	return examples, nil
}
