package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-rest-boilerplate/internal/logger"
	"github.com/MKhiriev/go-rest-boilerplate/internal/mock"
	"github.com/MKhiriev/go-rest-boilerplate/internal/validators"
	"github.com/MKhiriev/go-rest-boilerplate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestCredentialStore(t *testing.T) (UserRepository, *mock.MockPasswordHasher, *memoryUserStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	storage := newMemoryUserStorage()

	repo := newUserRepository(storage, hasher, validators.NewUserValidator(), fixedIDs("generated-id"), logger.Nop())
	return repo, hasher, storage
}

func TestCreateUser_HashesPlaintext(t *testing.T) {
	repo, hasher, storage := newTestCredentialStore(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("password123").Return("$2a$hash", nil)

	created, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", created.UserID)
	assert.Equal(t, "$2a$hash", created.PasswordHash)
	assert.Empty(t, created.Password, "plaintext must not leave the store")

	stored, err := storage.selectUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", stored.PasswordHash)
	assert.Empty(t, stored.Password)
}

func TestCreateUser_KeepsExistingHash(t *testing.T) {
	repo, _, storage := newTestCredentialStore(t)
	ctx := context.Background()

	// no Hash expectation: an unchanged hash must not be hashed again
	created, err := repo.CreateUser(ctx, models.User{UserID: "given-id", Username: "alice", PasswordHash: "$2a$existing"})
	require.NoError(t, err)
	assert.Equal(t, "given-id", created.UserID)
	assert.Equal(t, "$2a$existing", created.PasswordHash)

	stored, err := storage.selectUserByID(ctx, "given-id")
	require.NoError(t, err)
	assert.Equal(t, "$2a$existing", stored.PasswordHash)
}

func TestCreateUser_ValidationError(t *testing.T) {
	tests := []struct {
		name        string
		user        models.User
		wantMessage string
	}{
		{name: "short username", user: models.User{Username: "a", Password: "password123"}, wantMessage: "Username must be at least 2 characters long."},
		{name: "symbols in username", user: models.User{Username: "al-ice", Password: "password123"}, wantMessage: "Username can only contain alphanumeric characters."},
		{name: "short password", user: models.User{Username: "alice", Password: "pw"}, wantMessage: "Password must be at least 8 characters long."},
		{name: "no password at all", user: models.User{Username: "alice"}, wantMessage: "Password is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, storage := newTestCredentialStore(t)

			_, err := repo.CreateUser(context.Background(), tt.user)

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantMessage, vErr.Message)

			_, err = storage.selectUserByUsername(context.Background(), tt.user.Username)
			assert.ErrorIs(t, err, ErrUserNotFound, "nothing is persisted on validation failure")
		})
	}
}

func TestCreateUser_HashError(t *testing.T) {
	repo, hasher, _ := newTestCredentialStore(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice", Password: "password123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash password")
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo, hasher, _ := newTestCredentialStore(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil).Times(2)

	_, err := repo.CreateUser(ctx, models.User{UserID: "id-1", Username: "alice", Password: "password123"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{UserID: "id-2", Username: "alice", Password: "password456"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestFindAndDelete(t *testing.T) {
	repo, hasher, _ := newTestCredentialStore(t)
	ctx := context.Background()

	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil)
	created, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	byName, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	byID, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	_, err = repo.FindUserByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, ErrUserNotFound, "usernames are matched exactly")

	require.NoError(t, repo.DeleteUserByUsername(ctx, "alice"))
	assert.ErrorIs(t, repo.DeleteUserByUsername(ctx, "alice"), ErrUserNotFound)

	_, err = repo.FindUserByID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser_GeneratesIDOnlyWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)
	repo := newUserRepository(newMemoryUserStorage(), hasher, validators.NewUserValidator(), ids, logger.Nop())
	ctx := context.Background()

	hasher.EXPECT().Hash(gomock.Any()).Return("$2a$hash", nil).Times(2)
	ids.EXPECT().Generate().Return("0190a6c4-7b1e-7000-8000-000000000001").Times(1)

	generated, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "0190a6c4-7b1e-7000-8000-000000000001", generated.UserID)

	given, err := repo.CreateUser(ctx, models.User{UserID: "given-id", Username: "bob", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "given-id", given.UserID)
}
