package kv

import (
	"context"
	"encoding/json"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/kvstore"
	"washline/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store kvstore.Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store kvstore.Store) repository.UserRepository {
	return &userRepository{store: store}
}

// FindByID retrieves a user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	raw, err := repo.store.Get(ctx, userKey(id))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrUserNotFound
		}

		// For other store errors, return a generic store error
		return nil, domainerrors.NewStoreExecuteError(err, "failed to get user record")
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user record")
	}

	return &user, nil
}

// Save persists a user record, creating or overwriting.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	if err := repo.store.Set(ctx, userKey(user.ID), user); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save user record")
	}

	return nil
}
