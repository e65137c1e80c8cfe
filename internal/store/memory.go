package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-rest-boilerplate/models"
)

// memoryUserStorage keeps users in process memory. Username uniqueness is
// checked and recorded under one lock, so concurrent inserts of the same
// username cannot both succeed.
type memoryUserStorage struct {
	mu         sync.RWMutex
	byUsername map[string]models.User
	byID       map[string]string
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{
		byUsername: make(map[string]models.User),
		byID:       make(map[string]string),
	}
}

func (s *memoryUserStorage) insertUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return ErrUsernameAlreadyExists
	}

	user.Password = ""
	s.byUsername[user.Username] = user
	s.byID[user.UserID] = user.Username
	return nil
}

func (s *memoryUserStorage) selectUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byUsername[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStorage) selectUserByID(_ context.Context, userID string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.byID[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return s.byUsername[username], nil
}

func (s *memoryUserStorage) deleteUserByUsername(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byUsername[username]
	if !ok {
		return ErrUserNotFound
	}

	delete(s.byUsername, username)
	delete(s.byID, user.UserID)
	return nil
}

// memoryExampleRepository is the in-memory implementation of
// [ExampleRepository]. Examples are returned in insertion order.
type memoryExampleRepository struct {
	mu       sync.RWMutex
	examples []models.Example
	ids      IDGenerator
}

// NewMemoryExampleRepository constructs an empty in-memory
// [ExampleRepository].
func NewMemoryExampleRepository(ids IDGenerator) ExampleRepository {
	return &memoryExampleRepository{ids: ids}
}

func (r *memoryExampleRepository) GetAllExamples(context.Context) ([]models.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	examples := slices.Clone(r.examples)
	if examples == nil {
		examples = make([]models.Example, 0)
	}
	return examples, nil
}

func (r *memoryExampleRepository) CreateExample(_ context.Context, example models.Example) (models.Example, error) {
	if example.ID == "" {
		example.ID = r.ids.Generate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples = append(r.examples, example)
	return example, nil
}
