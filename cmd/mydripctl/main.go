// mydripctl is the maintenance CLI for the wardrobe store. It talks to the
// sqlite database directly, bypassing the HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"mydrip/config"
	"mydrip/internal/domain/repository"
	"mydrip/internal/infra/auth"
	logs "mydrip/internal/infra/log"
	"mydrip/internal/infra/persistence/kv"
	"mydrip/internal/infra/persistence/sqlite"
	"mydrip/internal/infra/qrcode"
	"mydrip/internal/usecase"
	"mydrip/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "mydripctl",
		Short:         "Maintenance CLI for the wardrobe store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExportCmd(),
		newImportCmd(),
		newSeedCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliEnv wires the store and the use cases the subcommands need.
type cliEnv struct {
	cfg    *config.Config
	logger *slog.Logger

	account     usecase.AccountUsecase
	wardrobe    usecase.WardrobeUsecase
	outfit      usecase.OutfitUsecase
	measurement usecase.MeasurementUsecase
	profile     usecase.ProfileUsecase
}

func newEnv() (*cliEnv, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	db, err := gorm.Open(sqlitedriver.Open(cfg.Storage.Path), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store at %s", cfg.Storage.Path)
	}

	store, err := sqlite.NewWithDB(db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare store")
	}

	return buildEnv(cfg, logger, store)
}

func buildEnv(cfg *config.Config, logger *slog.Logger, store repository.KVStore) (*cliEnv, error) {
	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build token service")
	}

	txManager := kv.NewTransactionManager(store)
	sessionRepo := kv.NewSessionRepository(store)
	wardrobeRepo := kv.NewWardrobeRepository(store)
	outfitRepo := kv.NewOutfitRepository(store)
	measurementRepo := kv.NewMeasurementRepository(store)

	env := &cliEnv{
		cfg:    cfg,
		logger: logger,
		account: impl.NewAccountService(impl.AccountServiceParams{
			TxManager:    txManager,
			SessionRepo:  sessionRepo,
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokenSvc,
			Logger:       logger,
		}),
		wardrobe: impl.NewWardrobeService(impl.WardrobeServiceParams{
			TxManager:    txManager,
			WardrobeRepo: wardrobeRepo,
			Logger:       logger,
		}),
		outfit: impl.NewOutfitService(impl.OutfitServiceParams{
			TxManager:    txManager,
			OutfitRepo:   outfitRepo,
			WardrobeRepo: wardrobeRepo,
			QRService:    qrcode.NewQRCodeService(256, "M"),
			Logger:       logger,
		}),
		measurement: impl.NewMeasurementService(impl.MeasurementServiceParams{
			MeasurementRepo: measurementRepo,
			Logger:          logger,
		}),
		profile: impl.NewProfileService(impl.ProfileServiceParams{
			TxManager:       txManager,
			WardrobeRepo:    wardrobeRepo,
			OutfitRepo:      outfitRepo,
			MeasurementRepo: measurementRepo,
			Logger:          logger,
		}),
	}

	return env, nil
}
