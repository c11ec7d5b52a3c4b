// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the account and returns a session token for it.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Info("Signup rejected, email already registered", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, service.ErrPasswordTooLong) {
		return nil, errors.WithStack(domainerrors.ErrPasswordTooLong)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Cart:         entity.Cart{},
		CreatedAt:    time.Now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup with the same email lost the race at the unique index.
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, errors.WithStack(domainerrors.ErrEmailTaken)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies the credentials and returns a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed, unknown email", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrWrongEmail)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed, wrong password", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrWrongPassword)
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *userService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := srv.tokenService.Issue(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
