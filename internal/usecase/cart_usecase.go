package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase mutates and reads the cart of an authenticated user.
type CartUsecase interface {
	// AddItem increments itemID by one and returns the resulting cart.
	AddItem(ctx context.Context, userID uuid.UUID, itemID entity.ItemID) (entity.Cart, error)

	// RemoveItem decrements itemID when its quantity is above zero and returns the resulting cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID entity.ItemID) (entity.Cart, error)

	// GetCart returns every quantity, including the seeded zero range.
	GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error)
}
