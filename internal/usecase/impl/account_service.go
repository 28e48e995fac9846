// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/domain/service"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the wardrobe account. The storage holds a single account;
// registration fails while one exists. The credential is stored as a bcrypt
// hash, never as plaintext.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      input.Name,
		Plan:      entity.PlanFree,
		CreatedAt: time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		_, findErr := sessionRepo.FindUser(ctx)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "an account is already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing account")
		}

		if err := sessionRepo.SaveCredential(ctx, email, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to store credential during registration")
		}

		return errors.Wrap(sessionRepo.SaveUser(ctx, newUser), "failed to store user during registration")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{
		User:         newUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies the password against the stored credential and requires the
// account record to be present. Both failure modes return the same error so
// callers cannot probe which part was wrong.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	storedHash, err := srv.sessionRepo.FindCredential(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load credential during login")
	}

	// bcrypt check runs outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, storedHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.sessionRepo.FindUser(ctx)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account during login")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout removes the account record only. Credentials stay so the same
// email and password log back in.
func (srv *accountService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Logging out")

	if err := srv.sessionRepo.DeleteUser(ctx); err != nil {
		srv.log(ctx).Error("Failed to delete account record on logout", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account record on logout")
	}

	return nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself is not rotated.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Refreshing access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	user, err := srv.sessionRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "no active account for refresh token")
		}

		return nil, errors.Wrap(err, "failed to load account during token refresh")
	}
	if user.ID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token does not match active account")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// CurrentUser returns the active account.
func (srv *accountService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.sessionRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no active account")
		}

		return nil, errors.Wrap(err, "failed to load current account")
	}

	return user, nil
}

// IsAuthenticated reports whether an account record exists.
func (srv *accountService) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := srv.sessionRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check authentication state")
	}

	return true, nil
}

// UpgradeToPremium switches the account to the premium plan. Upgrading an
// already premium account is a no-op.
func (srv *accountService) UpgradeToPremium(ctx context.Context) (*entity.User, error) {
	srv.log(ctx).Info("Upgrading account to premium")

	var upgraded *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		user, err := sessionRepo.FindUser(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no active account to upgrade")
			}

			return errors.Wrap(err, "failed to load account for upgrade")
		}

		if user.Plan != entity.PlanPremium {
			user.Plan = entity.PlanPremium
			if err := sessionRepo.SaveUser(ctx, user); err != nil {
				return errors.Wrap(err, "failed to persist plan upgrade")
			}
		}
		upgraded = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upgrade account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute upgrade transaction")
	}

	srv.log(ctx).Debug("Account upgraded", slog.Any("userID", upgraded.ID))

	return upgraded, nil
}

// CanCreateOutfit evaluates the plan gate for the active account. A missing
// session is reported as a denied permission, not an error, so callers can
// render the gate without special-casing logged-out state.
func (srv *accountService) CanCreateOutfit(ctx context.Context) (*entity.OutfitPermission, error) {
	user, err := srv.sessionRepo.FindUser(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &entity.OutfitPermission{Allowed: false, Reason: "no active account"}, nil
		}

		return nil, errors.Wrap(err, "failed to load account for outfit gate")
	}

	permission := user.CanCreateOutfit()

	return &permission, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
