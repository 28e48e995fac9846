package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mydrip/config"
	"mydrip/internal/domain/entity"
	"mydrip/internal/infra/auth"
	"mydrip/internal/infra/catalog"
	"mydrip/internal/infra/i18n"
	"mydrip/internal/infra/persistence/kv"
	"mydrip/internal/infra/persistence/memory"
	"mydrip/internal/infra/qrcode"
	"mydrip/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Catalog: &config.CatalogConfig{SearchDelay: 0},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

// testEnv wires every service against one shared in-memory store, the same
// shape the fx graph builds in production.
type testEnv struct {
	store       *memory.Store
	account     usecase.AccountUsecase
	wardrobe    usecase.WardrobeUsecase
	outfit      usecase.OutfitUsecase
	measurement usecase.MeasurementUsecase
	catalog     usecase.CatalogUsecase
	locale      usecase.LocaleUsecase
	profile     usecase.ProfileUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	logger := newTestLogger()
	store := memory.NewStore()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := kv.NewTransactionManager(store)
	sessionRepo := kv.NewSessionRepository(store)
	wardrobeRepo := kv.NewWardrobeRepository(store)
	outfitRepo := kv.NewOutfitRepository(store)
	measurementRepo := kv.NewMeasurementRepository(store)
	localeRepo := kv.NewLocaleRepository(store)

	return &testEnv{
		store: store,
		account: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			SessionRepo:  sessionRepo,
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokenService,
			Logger:       logger,
		}),
		wardrobe: NewWardrobeService(WardrobeServiceParams{
			TxManager:    txManager,
			WardrobeRepo: wardrobeRepo,
			Logger:       logger,
		}),
		outfit: NewOutfitService(OutfitServiceParams{
			TxManager:    txManager,
			OutfitRepo:   outfitRepo,
			WardrobeRepo: wardrobeRepo,
			QRService:    qrcode.NewQRCodeService(128, "M"),
			Logger:       logger,
		}),
		measurement: NewMeasurementService(MeasurementServiceParams{
			MeasurementRepo: measurementRepo,
			Logger:          logger,
		}),
		catalog: NewCatalogService(CatalogServiceParams{
			Gateway: catalog.NewSheinGateway(cfg),
			Logger:  logger,
		}),
		locale: NewLocaleService(LocaleServiceParams{
			LocaleRepo: localeRepo,
			Translator: i18n.NewTranslator(),
			Logger:     logger,
		}),
		profile: NewProfileService(ProfileServiceParams{
			TxManager:       txManager,
			WardrobeRepo:    wardrobeRepo,
			OutfitRepo:      outfitRepo,
			MeasurementRepo: measurementRepo,
			Logger:          logger,
		}),
	}
}

// registerAccount registers the default test account.
func (env *testEnv) registerAccount(t *testing.T) *entity.User {
	t.Helper()

	out, err := env.account.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	return out.User
}

// addItem adds a wardrobe item with sane defaults.
func (env *testEnv) addItem(t *testing.T, name string, category entity.Category, seasons ...entity.Season) *entity.ClothingItem {
	t.Helper()

	if len(seasons) == 0 {
		seasons = []entity.Season{entity.SeasonSummer}
	}
	rawSeasons := make([]string, 0, len(seasons))
	for _, s := range seasons {
		rawSeasons = append(rawSeasons, s.String())
	}

	item, err := env.wardrobe.AddItem(context.Background(), &usecase.AddItemInput{
		Name:     name,
		Category: category.String(),
		Color:    "Azul",
		Seasons:  rawSeasons,
	})
	require.NoError(t, err)

	// Spread AddedAt so time-based sorting is deterministic.
	time.Sleep(time.Millisecond)

	return item
}
