// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mydrip/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register the wardrobe account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a fresh token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RefreshTokenOutput returns the re-issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the interface for account and session operations.
// The storage holds at most one account; registering while one exists fails.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	CurrentUser(ctx context.Context) (*entity.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	UpgradeToPremium(ctx context.Context) (*entity.User, error)
	CanCreateOutfit(ctx context.Context) (*entity.OutfitPermission, error)
}
