package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	seedSize int
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	CartRepo repository.CartRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCartService creates the cart usecase.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	seedSize := 0
	if params.Config != nil && params.Config.Cart != nil {
		seedSize = params.Config.Cart.SeedSize
	}

	return &cartService{
		userRepo: params.UserRepo,
		cartRepo: params.CartRepo,
		seedSize: seedSize,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, itemID entity.ItemID) (entity.Cart, error) {
	if err := srv.prepare(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Increment(ctx, userID, itemID.String()); err != nil {
		return nil, srv.mapOwnerError(ctx, userID, err, "failed to increment cart item")
	}

	srv.log(ctx).Debug("Cart item added", slog.Any("userID", userID), slog.String("itemID", itemID.String()))

	return srv.snapshot(ctx, userID)
}

func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID entity.ItemID) (entity.Cart, error) {
	if err := srv.prepare(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Decrement(ctx, userID, itemID.String()); err != nil {
		return nil, srv.mapOwnerError(ctx, userID, err, "failed to decrement cart item")
	}

	srv.log(ctx).Debug("Cart item removed", slog.Any("userID", userID), slog.String("itemID", itemID.String()))

	return srv.snapshot(ctx, userID)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	if err := srv.ensureOwner(ctx, userID); err != nil {
		return nil, err
	}

	cart, err := srv.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return cart.WithSeededZeros(srv.seedSize), nil
}

func (srv *cartService) prepare(ctx context.Context, userID uuid.UUID, itemID entity.ItemID) error {
	if !itemID.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "itemID is required and must not contain '.', '$' or NUL")
	}

	return srv.ensureOwner(ctx, userID)
}

// ensureOwner rejects tokens whose user no longer exists in the store.
func (srv *cartService) ensureOwner(ctx context.Context, userID uuid.UUID) error {
	_, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return srv.mapOwnerError(ctx, userID, err, "failed to load cart owner")
	}

	return nil
}

func (srv *cartService) snapshot(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	cart, err := srv.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, srv.mapOwnerError(ctx, userID, err, "failed to load cart")
	}
	if cart == nil {
		cart = entity.Cart{}
	}

	return cart, nil
}

func (srv *cartService) mapOwnerError(ctx context.Context, userID uuid.UUID, err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Authenticated user has no stored record", slog.Any("userID", userID), slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrCartOwnerMissing)
	}

	return errors.Wrap(err, msg)
}
