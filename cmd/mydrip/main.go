package main

import (
	"context"
	"log/slog"
	"os"

	"mydrip/config"
	"mydrip/internal/delivery"
	"mydrip/internal/delivery/http"
	"mydrip/internal/delivery/http/middleware"
	"mydrip/internal/delivery/http/router/handler"
	"mydrip/internal/domain/service"
	"mydrip/internal/infra/auth"
	"mydrip/internal/infra/catalog"
	"mydrip/internal/infra/i18n"
	logs "mydrip/internal/infra/log"
	"mydrip/internal/infra/persistence/kv"
	"mydrip/internal/infra/persistence/sqlite"
	"mydrip/internal/infra/qrcode"
	"mydrip/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewSessionRepository,
			kv.NewWardrobeRepository,
			kv.NewOutfitRepository,
			kv.NewMeasurementRepository,
			kv.NewLocaleRepository,
			kv.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			catalog.NewSheinGateway,
			i18n.NewTranslator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewWardrobeService,
			impl.NewOutfitService,
			impl.NewMeasurementService,
			impl.NewCatalogService,
			impl.NewLocaleService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewWardrobeHandler,
			handler.NewOutfitHandler,
			handler.NewMeasurementHandler,
			handler.NewCatalogHandler,
			handler.NewLocaleHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
