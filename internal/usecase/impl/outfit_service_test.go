package impl

import (
	"bytes"
	"context"
	"testing"

	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestOutfitService_CreateOutfit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa Azul", entity.CategoryTop)
	bottom := env.addItem(t, "Calça Jeans", entity.CategoryBottom)

	outfit, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Look Casual",
		ItemIDs: []uuid.UUID{top.ID, bottom.ID},
		Rating:  4,
		Notes:   "para o trabalho",
	})
	require.NoError(t, err)

	assert.Equal(t, "Look Casual", outfit.Name)
	require.Len(t, outfit.Items, 2)
	assert.Equal(t, top.ID, outfit.Items[0].ID)
	assert.Equal(t, 4, outfit.Rating)

	user, err := env.account.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, user.OutfitsCreated)
}

func TestOutfitService_CreateOutfitValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "",
		ItemIDs: []uuid.UUID{top.ID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{Name: "Vazio"})
	assert.ErrorIs(t, err, domainerrors.ErrOutfitEmpty)

	_, err = env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Fantasma",
		ItemIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestOutfitService_FreePlanLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	for i := 0; i < entity.FreeOutfitLimit; i++ {
		_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
			Name:    "Look",
			ItemIDs: []uuid.UUID{top.ID},
		})
		require.NoError(t, err)
	}

	_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Um a mais",
		ItemIDs: []uuid.UUID{top.ID},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOutfitLimitReached)

	// Nothing was appended and the counter did not move.
	outfits, err := env.outfit.ListOutfits(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, outfits, entity.FreeOutfitLimit)

	user, err := env.account.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.FreeOutfitLimit, user.OutfitsCreated)

	// Upgrading unblocks creation immediately.
	_, err = env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)

	_, err = env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Premium",
		ItemIDs: []uuid.UUID{top.ID},
	})
	assert.NoError(t, err)
}

func TestOutfitService_RemoveKeepsLifetimeCounter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	outfit, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Look",
		ItemIDs: []uuid.UUID{top.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.outfit.RemoveOutfit(ctx, outfit.ID))

	outfits, err := env.outfit.ListOutfits(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, outfits)

	user, err := env.account.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, user.OutfitsCreated)

	err = env.outfit.RemoveOutfit(ctx, outfit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOutfitNotFound)
}

func TestOutfitService_SnapshotsSurviveItemRemoval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa Azul", entity.CategoryTop)

	_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Look",
		ItemIDs: []uuid.UUID{top.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.wardrobe.RemoveItem(ctx, top.ID))

	outfits, err := env.outfit.ListOutfits(ctx, nil)
	require.NoError(t, err)
	require.Len(t, outfits, 1)
	require.Len(t, outfits[0].Items, 1)
	assert.Equal(t, "Camisa Azul", outfits[0].Items[0].Name)
}

func TestOutfitService_ListOutfitsSorting(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	_, err := env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	for _, c := range []struct {
		name   string
		rating int
	}{
		{"Bom", 3},
		{"Sem nota", 0},
		{"Favorito", 5},
	} {
		_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
			Name:    c.name,
			ItemIDs: []uuid.UUID{top.ID},
			Rating:  c.rating,
		})
		require.NoError(t, err)
	}

	byRating, err := env.outfit.ListOutfits(ctx, &usecase.OutfitFilter{Sort: usecase.SortByRating})
	require.NoError(t, err)
	require.Len(t, byRating, 3)
	assert.Equal(t, "Favorito", byRating[0].Name)
	// Unrated sorts as zero, last.
	assert.Equal(t, "Sem nota", byRating[2].Name)

	byName, err := env.outfit.ListOutfits(ctx, &usecase.OutfitFilter{Sort: usecase.SortByName})
	require.NoError(t, err)
	assert.Equal(t, "Bom", byName[0].Name)
}

func TestOutfitService_ListOutfitsSortsAccentedNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	_, err := env.account.UpgradeToPremium(ctx)
	require.NoError(t, err)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	for _, name := range []string{"Festa", "Azul", "Árvore"} {
		_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
			Name:    name,
			ItemIDs: []uuid.UUID{top.ID},
		})
		require.NoError(t, err)
	}

	byName, err := env.outfit.ListOutfits(ctx, &usecase.OutfitFilter{Sort: usecase.SortByName})
	require.NoError(t, err)
	require.Len(t, byName, 3)

	// Accented names collate with their base letter, not by byte value.
	assert.Equal(t, "Árvore", byName[0].Name)
	assert.Equal(t, "Azul", byName[1].Name)
	assert.Equal(t, "Festa", byName[2].Name)
}

func TestOutfitService_ListOutfitsSeasonFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	summer := env.addItem(t, "Camiseta", entity.CategoryTop, entity.SeasonSummer)
	winter := env.addItem(t, "Casaco", entity.CategoryTop, entity.SeasonWinter)

	_, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Verão",
		ItemIDs: []uuid.UUID{summer.ID},
	})
	require.NoError(t, err)
	_, err = env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Inverno",
		ItemIDs: []uuid.UUID{winter.ID},
	})
	require.NoError(t, err)

	filtered, err := env.outfit.ListOutfits(ctx, &usecase.OutfitFilter{Season: "winter"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Inverno", filtered[0].Name)
}

func TestOutfitService_RandomOutfit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	env.addItem(t, "Camisa 1", entity.CategoryTop)
	env.addItem(t, "Camisa 2", entity.CategoryTop)
	env.addItem(t, "Calça", entity.CategoryBottom)

	outfit, err := env.outfit.RandomOutfit(ctx)
	require.NoError(t, err)

	// One item per represented category, none persisted.
	require.Len(t, outfit.Items, 2)
	seen := map[entity.Category]int{}
	for _, item := range outfit.Items {
		seen[item.Category]++
	}
	assert.Equal(t, 1, seen[entity.CategoryTop])
	assert.Equal(t, 1, seen[entity.CategoryBottom])

	saved, err := env.outfit.ListOutfits(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestOutfitService_RandomOutfitEmptyWardrobe(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.outfit.RandomOutfit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestOutfitService_ShareQR(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerAccount(t)
	top := env.addItem(t, "Camisa", entity.CategoryTop)

	outfit, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
		Name:    "Look",
		ItemIDs: []uuid.UUID{top.ID},
	})
	require.NoError(t, err)

	png, err := env.outfit.ShareQR(ctx, outfit.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))

	_, err = env.outfit.ShareQR(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOutfitNotFound)
}
