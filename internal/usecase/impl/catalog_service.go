package impl

import (
	"context"
	"log/slog"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/service"
	"mydrip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gateway service.CatalogGateway
	logger  *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Gateway service.CatalogGateway
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		gateway: params.Gateway,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search queries the catalog gateway. Category "all" or empty searches every
// category; anything else must be part of the closed category set.
func (srv *catalogService) Search(ctx context.Context, input *usecase.CatalogSearchInput) ([]entity.CatalogProduct, error) {
	var category entity.Category
	if input.Category != "" && input.Category != "all" {
		parsed, ok := entity.ParseCategory(input.Category)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", input.Category)
		}
		category = parsed
	}

	products, err := srv.gateway.Search(ctx, input.Query, category)
	if err != nil {
		srv.log(ctx).Warn("Catalog search failed", slog.String("query", input.Query), slog.Any("error", err))

		return nil, errors.Wrap(err, "catalog search failed")
	}

	srv.log(ctx).Debug("Catalog search completed", slog.String("query", input.Query), slog.Int("results", len(products)))

	return products, nil
}
