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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxCatalogIDAttempts bounds the recompute-and-insert loop when concurrent adds collide on a catalog id.
	maxCatalogIDAttempts = 3

	newCollectionSize   = 8
	popularInWomenSize  = 4
	popularInWomenGroup = "women"
)

type catalogService struct {
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCatalogService creates the catalog usecase.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddProduct assigns the next catalog id and stores the product.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:      strings.TrimSpace(input.Name),
		Image:     input.Image,
		Category:  strings.TrimSpace(input.Category),
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Available: true,
		CreatedAt: srv.now(),
	}

	for attempt := 1; attempt <= maxCatalogIDAttempts; attempt++ {
		maxID, found, err := srv.productRepo.MaxCatalogID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read max catalog id")
		}
		product.CatalogID = entity.NextCatalogID(maxID, found)

		err = srv.productRepo.Create(ctx, product)
		if err == nil {
			srv.log(ctx).Info("Product added", slog.Int("id", product.CatalogID), slog.String("name", product.Name))
			srv.publish(ctx, service.CatalogEventProductCreated, product)

			return product, nil
		}
		if !errors.Is(err, repository.ErrProductIDTaken) {
			return nil, errors.Wrap(err, "failed to create product")
		}

		srv.log(ctx).Warn("Catalog id collision, recomputing",
			slog.Int("id", product.CatalogID),
			slog.Int("attempt", attempt),
		)
	}

	return nil, errors.WithStack(domainerrors.ErrProductIDConflict)
}

// RemoveProduct deletes the product with the given catalog id.
func (srv *catalogService) RemoveProduct(ctx context.Context, catalogID int) (*entity.Product, error) {
	product, err := srv.productRepo.DeleteByCatalogID(ctx, catalogID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product removed", slog.Int("id", product.CatalogID), slog.String("name", product.Name))
	srv.publish(ctx, service.CatalogEventProductRemoved, product)

	return product, nil
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// NewCollection skips the oldest product and returns the newest eight of the rest.
func (srv *catalogService) NewCollection(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if len(products) <= 1 {
		return []*entity.Product{}, nil
	}
	rest := products[1:]
	if len(rest) > newCollectionSize {
		rest = rest[len(rest)-newCollectionSize:]
	}

	return rest, nil
}

// PopularInWomen returns the first four products of the women category.
func (srv *catalogService) PopularInWomen(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByCategory(ctx, popularInWomenGroup, popularInWomenSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular products")
	}

	return products, nil
}

// ProductQRCode renders a QR code linking to an existing product.
func (srv *catalogService) ProductQRCode(ctx context.Context, catalogID int) ([]byte, error) {
	if _, err := srv.productRepo.FindByCatalogID(ctx, catalogID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	png, err := srv.qrService.GenerateProductQR(catalogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR code")
	}

	return png, nil
}

// publish is best effort; the catalog change is already committed.
func (srv *catalogService) publish(ctx context.Context, eventType string, product *entity.Product) {
	event := &service.CatalogEvent{
		Type:      eventType,
		ProductID: product.CatalogID,
		Name:      product.Name,
		Category:  product.Category,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish catalog event",
			slog.String("type", eventType),
			slog.Int("id", product.CatalogID),
			slog.Any("error", err),
		)
	}
}
