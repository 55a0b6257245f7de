// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"tripflow/internal/domain/entity"
	domainerrors "tripflow/internal/domain/errors"
	"tripflow/internal/domain/repository"
	"tripflow/internal/domain/service"
	"tripflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a local account and issues an access token for it.
func (srv *userService) Register(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", "username", input.Username)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrDuplicateUser
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokens.Generate(user.ID.String(), user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		UserID:      user.ID.String(),
		AccessToken: token,
	}, nil
}

// Login verifies the credentials against the stored hash and issues an
// access token. A missing user and a wrong password produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Logging in user", "username", input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Generate(user.ID.String(), user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		UserID:      user.ID.String(),
		AccessToken: token,
	}, nil
}
