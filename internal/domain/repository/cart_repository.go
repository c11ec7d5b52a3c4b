package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists per-user item quantities.
// Increment and Decrement are single atomic operations in the store, so concurrent callers never lose updates.
type CartRepository interface {
	// Get returns the stored quantities for the user. Missing rows mean zero.
	Get(ctx context.Context, userID uuid.UUID) (entity.Cart, error)

	// Increment adds one to the item, creating it at 1 when absent.
	Increment(ctx context.Context, userID uuid.UUID, itemID string) error

	// Decrement subtracts one from the item when its quantity is above zero; otherwise it is a no-op.
	Decrement(ctx context.Context, userID uuid.UUID, itemID string) error
}
