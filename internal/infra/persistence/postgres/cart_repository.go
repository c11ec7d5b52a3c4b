package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for the cart_items backed CartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	var items []model.CartItemModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	cart := make(entity.Cart, len(items))
	for _, item := range items {
		cart[item.ItemID] = item.Quantity
	}

	return cart, nil
}

// Increment performs INSERT ... ON CONFLICT DO UPDATE so the read and the write are one statement.
func (repo *cartRepository) Increment(ctx context.Context, userID uuid.UUID, itemID string) error {
	item := &model.CartItemModel{UserID: userID, ItemID: itemID, Quantity: 1}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + 1"),
			}),
		}).
		Create(item).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "cart owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to increment cart item")
	}

	return nil
}

// Decrement only touches rows whose quantity is above zero, so it can never drive a quantity negative.
func (repo *cartRepository) Decrement(ctx context.Context, userID uuid.UUID, itemID string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND item_id = ? AND quantity > 0", userID, itemID).
		UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "cart quantity would become negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to decrement cart item")
	}

	return nil
}
