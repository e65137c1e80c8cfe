package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-boilerplate/models"
)

var (
	userColumns    = []string{"id", "username", "password_hash"}
	exampleColumns = []string{"id", "title", "description"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.PasswordHash).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return buildSelectUserQuery(b, sq.Eq{"username": username})
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return buildSelectUserQuery(b, sq.Eq{"id": userID})
}

func buildDeleteUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllExamplesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(exampleColumns...).
		From(models.Example{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertExampleQuery(b sq.StatementBuilderType, example models.Example) (string, []any, error) {
	query, args, err := b.
		Insert(example.TableName()).
		Columns(exampleColumns...).
		Values(example.ID, example.Title, example.Description).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
