package repository

import (
	"context"
	"errors"

	"washline/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores the identity provider's login records,
// keyed by email.
type CredentialRepository interface {
	// FindByEmail retrieves the credential registered for email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// Save persists a credential record, creating or overwriting.
	Save(ctx context.Context, credential *entity.Credential) error
}
