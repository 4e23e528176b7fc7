// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"washline/internal/domain/entity"
	domainerrors "washline/internal/domain/errors"
	"washline/internal/domain/repository"
	"washline/internal/domain/service"
	"washline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface. Together with the token
// service and password hasher it plays the role of the identity provider:
// signup creates the login credential, login verifies it and issues tokens.
type userService struct {
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenSvc       service.TokenService
	logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	credentialRepo repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenSvc:       tokenSvc,
		logger:         logger,
	}
}

// Signup registers a new account: a credential for the identity provider and
// the mirrored user record. All validation happens before any write.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidRole)
	}

	if _, err := srv.credentialRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	} else if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to check email registration")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      role,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
	}

	// The credential is written first: it doubles as the uniqueness guard
	// for the email, so a crash after this write blocks a second signup
	// from claiming the same address.
	credential := &entity.Credential{
		UserID:       user.ID,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := srv.credentialRepo.Save(ctx, credential); err != nil {
		return nil, errors.Wrap(err, "failed to save credential")
	}

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user record")
	}

	srv.logger.Info("User signed up",
		slog.String("userID", user.ID.String()),
		slog.String("role", role.String()),
	)

	return user, nil
}

// Login verifies the email/password pair and issues access and refresh tokens.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.credentialRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load user record")
	}

	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetUser retrieves a user record by id.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load user record")
	}

	return user, nil
}

// UpdateUser applies a partial profile update. Only the owning user may
// update its record; identity fields stay immutable.
func (srv *userService) UpdateUser(ctx context.Context, callerID, userID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if callerID != userID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load user record")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := srv.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user record")
	}

	return user, nil
}
