package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// exampleRepository is the SQL-backed implementation of [ExampleRepository].
type exampleRepository struct {
	db  *DB
	ids IDGenerator
}

// NewExampleRepository constructs an [ExampleRepository] backed by db.
func NewExampleRepository(db *DB, ids IDGenerator) ExampleRepository {
	return &exampleRepository{db: db, ids: ids}
}

func (r *exampleRepository) GetAllExamples(ctx context.Context) ([]models.Example, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllExamplesQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exampleRepository.GetAllExamples").Msg("error selecting examples")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	examples := make([]models.Example, 0)
	for rows.Next() {
		var (
			example     models.Example
			description sql.NullString
		)
		if err = rows.Scan(&example.ID, &example.Title, &description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if description.Valid {
			example.Description = &description.String
		}
		examples = append(examples, example)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*exampleRepository.GetAllExamples").Msg("error iterating examples")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return examples, nil
}

func (r *exampleRepository) CreateExample(ctx context.Context, example models.Example) (models.Example, error) {
	if example.ID == "" {
		example.ID = r.ids.Generate()
	}

	query, args, err := buildInsertExampleQuery(r.db.builder, example)
	if err != nil {
		return models.Example{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*exampleRepository.CreateExample").Msg("error inserting example")
		return models.Example{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return example, nil
}
