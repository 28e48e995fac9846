package kv

import (
	"context"
	"testing"
	"time"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/repository"
	"mydrip/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialKey_Canonicalizes(t *testing.T) {
	assert.Equal(t, "mydrip:credential:ana@example.com", credentialKey(" Ana@Example.COM "))
}

func TestSessionRepository_UserRoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	_, err := repo.FindUser(ctx)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		Name:      "Ana",
		Plan:      entity.PlanFree,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SaveUser(ctx, user))

	found, err := repo.FindUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, entity.PlanFree, found.Plan)

	require.NoError(t, repo.DeleteUser(ctx))
	_, err = repo.FindUser(ctx)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionRepository_CredentialSurvivesUserDeletion(t *testing.T) {
	store := memory.NewStore()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SaveCredential(ctx, "Ana@Example.com", "$2a$10$hash"))
	require.NoError(t, repo.SaveUser(ctx, &entity.User{ID: uuid.New(), Email: "ana@example.com"}))
	require.NoError(t, repo.DeleteUser(ctx))

	hash, err := repo.FindCredential(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", hash)

	_, err = repo.FindCredential(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestWardrobeRepository_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewWardrobeRepository(store)
	ctx := context.Background()

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []entity.ClothingItem{
		{ID: uuid.New(), Name: "Camisa Azul", Category: entity.CategoryTop, Color: "Azul", Seasons: entity.Seasons{entity.SeasonSummer}},
		{ID: uuid.New(), Name: "Calça Jeans", Category: entity.CategoryBottom, Color: "Azul", Seasons: entity.Seasons{entity.SeasonWinter}},
	}
	require.NoError(t, repo.SaveItems(ctx, saved))

	items, err = repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, saved[0].ID, items[0].ID)
	assert.Equal(t, entity.CategoryBottom, items[1].Category)

	require.NoError(t, repo.ClearItems(ctx))
	items, err = repo.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOutfitRepository_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewOutfitRepository(store)
	ctx := context.Background()

	outfits, err := repo.ListOutfits(ctx)
	require.NoError(t, err)
	assert.Empty(t, outfits)

	saved := []entity.Outfit{{
		ID:   uuid.New(),
		Name: "Look Casual",
		Items: []entity.ClothingItem{
			{ID: uuid.New(), Name: "Camisa Azul", Category: entity.CategoryTop},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}}
	require.NoError(t, repo.SaveOutfits(ctx, saved))

	outfits, err = repo.ListOutfits(ctx)
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	assert.Equal(t, "Look Casual", outfits[0].Name)
	require.Len(t, outfits[0].Items, 1)

	require.NoError(t, repo.ClearOutfits(ctx))
	outfits, err = repo.ListOutfits(ctx)
	require.NoError(t, err)
	assert.Empty(t, outfits)
}

func TestMeasurementRepository_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewMeasurementRepository(store)
	ctx := context.Background()

	_, err := repo.Find(ctx)
	assert.ErrorIs(t, err, repository.ErrMeasurementsNotFound)

	m := entity.DefaultMeasurements()
	m.Height = 182
	require.NoError(t, repo.Save(ctx, m))

	found, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 182, found.Height, 0.001)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Find(ctx)
	assert.ErrorIs(t, err, repository.ErrMeasurementsNotFound)
}

func TestLocaleRepository_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := NewLocaleRepository(store)
	ctx := context.Background()

	_, err := repo.FindLanguage(ctx)
	assert.ErrorIs(t, err, repository.ErrLanguageNotFound)

	require.NoError(t, repo.SaveLanguage(ctx, "fr"))

	lang, err := repo.FindLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fr", lang)
}

func TestTransactionManager_CommitsAcrossRepositories(t *testing.T) {
	store := memory.NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	userID := uuid.New()
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewSessionRepository().SaveUser(ctx, &entity.User{ID: userID, OutfitsCreated: 1}); err != nil {
			return err
		}

		return f.NewOutfitRepository().SaveOutfits(ctx, []entity.Outfit{{ID: uuid.New(), Name: "Look 1"}})
	})
	require.NoError(t, err)

	user, err := NewSessionRepository(store).FindUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, user.OutfitsCreated)

	outfits, err := NewOutfitRepository(store).ListOutfits(ctx)
	require.NoError(t, err)
	assert.Len(t, outfits, 1)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := memory.NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewOutfitRepository().SaveOutfits(ctx, []entity.Outfit{{ID: uuid.New()}}); err != nil {
			return err
		}

		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	outfits, err := NewOutfitRepository(store).ListOutfits(ctx)
	require.NoError(t, err)
	assert.Empty(t, outfits)
}
