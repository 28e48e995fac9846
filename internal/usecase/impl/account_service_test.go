package impl

import (
	"context"
	"testing"

	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.account.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    " Ana@Example.COM ",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.PlanFree, out.User.Plan)
	assert.Zero(t, out.User.OutfitsCreated)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	authenticated, err := env.account.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)
}

func TestAccountService_RegisterTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)

	_, err := env.account.Register(ctx, &usecase.RegisterInput{
		Name:     "Outro",
		Email:    "outro@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered := env.registerAccount(t)

	out, err := env.account.Login(ctx, &usecase.LoginInput{
		Email:    "ANA@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)
}

func TestAccountService_LoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.registerAccount(t)

	_, err := env.account.Login(context.Background(), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_LoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	env.registerAccount(t)

	_, err := env.account.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_LogoutKeepsCredential(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	require.NoError(t, env.account.Logout(ctx))

	authenticated, err := env.account.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)

	// The session record is gone, so login fails even with the right
	// password until a new registration recreates it.
	_, err = env.account.Login(ctx, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "s3cret-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_CurrentUserWithoutAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.account.CurrentUser(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpgradeToPremium(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)

	upgraded, err := env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanPremium, upgraded.Plan)

	// Idempotent.
	again, err := env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanPremium, again.Plan)

	current, err := env.account.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanPremium, current.Plan)
}

func TestAccountService_CanCreateOutfitFreePlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	env.addItem(t, "Camisa Azul", entity.CategoryTop)

	for i := 0; i < entity.FreeOutfitLimit; i++ {
		permission, err := env.account.CanCreateOutfit(ctx)
		require.NoError(t, err)
		assert.True(t, permission.Allowed, "creation %d should be allowed", i)

		items, err := env.wardrobe.ListItems(ctx, nil)
		require.NoError(t, err)
		_, err = env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
			Name:    "Look",
			ItemIDs: []uuid.UUID{items[0].ID},
		})
		require.NoError(t, err)
	}

	permission, err := env.account.CanCreateOutfit(ctx)
	require.NoError(t, err)
	assert.False(t, permission.Allowed)
	assert.NotEmpty(t, permission.Reason)
}

func TestAccountService_CanCreateOutfitWithoutAccount(t *testing.T) {
	env := newTestEnv(t)

	// Logged-out state is a denied gate, not an error.
	permission, err := env.account.CanCreateOutfit(context.Background())
	require.NoError(t, err)
	assert.False(t, permission.Allowed)
	assert.NotEmpty(t, permission.Reason)
}

func TestAccountService_CanCreateOutfitPremiumUnlimited(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	_, err := env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)

	permission, err := env.account.CanCreateOutfit(ctx)
	require.NoError(t, err)
	assert.True(t, permission.Allowed)
	assert.Empty(t, permission.Reason)
}

func TestAccountService_RefreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.account.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	refreshed, err := env.account.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: out.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = env.account.RefreshToken(ctx, &usecase.RefreshTokenInput{
		RefreshToken: out.AccessToken,
	})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
