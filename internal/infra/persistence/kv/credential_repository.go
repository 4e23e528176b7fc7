package kv

import (
	"context"
	"encoding/json"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/kvstore"
	"washline/internal/domain/repository"

	"github.com/pkg/errors"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	store kvstore.Store
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(store kvstore.Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

// FindByEmail retrieves the credential registered for email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	raw, err := repo.store.Get(ctx, credentialKey(email))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		// For other store errors, return a generic store error
		return nil, domainerrors.NewStoreExecuteError(err, "failed to get credential record")
	}

	var credential entity.Credential
	if err := json.Unmarshal(raw, &credential); err != nil {
		return nil, errors.Wrap(err, "failed to decode credential record")
	}

	return &credential, nil
}

// Save persists a credential record, creating or overwriting.
func (repo *credentialRepository) Save(ctx context.Context, credential *entity.Credential) error {
	if err := repo.store.Set(ctx, credentialKey(credential.Email), credential); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save credential record")
	}

	return nil
}
