package impl

import (
	"context"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service  usecase.CartUsecase
	userRepo *mockRepo.MockUserRepository
	cartRepo *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			UserRepo: userRepo,
			CartRepo: cartRepo,
			Config:   newTestConfig(),
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// newMemoryCartService wires the cart service to a real in-memory store with one registered user.
func newMemoryCartService(t *testing.T) (usecase.CartUsecase, uuid.UUID) {
	t.Helper()

	store := memory.New()
	user := &entity.User{ID: uuid.New(), Name: "Cart Owner", Email: "owner@example.com"}
	require.NoError(t, store.Users().Create(context.Background(), user))

	return NewCartService(CartServiceParams{
		UserRepo: store.Users(),
		CartRepo: store.Carts(),
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	}), user.ID
}

func TestCartService_AddItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Increment(ctx, userID, "7").Return(nil)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(entity.Cart{"7": 1}, nil)

	cart, err := fx.service.AddItem(ctx, userID, "7")

	require.NoError(t, err)
	assert.Equal(t, entity.Cart{"7": 1}, cart)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Decrement(ctx, userID, "9").Return(nil)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(nil, nil)

	cart, err := fx.service.RemoveItem(ctx, userID, "9")

	require.NoError(t, err)
	assert.Equal(t, 0, cart.Quantity("9"))
}

func TestCartService_InvalidItemID(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	for _, itemID := range []entity.ItemID{"", "a.b", "$set"} {
		_, err := fx.service.AddItem(ctx, uuid.New(), itemID)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "itemID %q", itemID)
	}
}

func TestCartService_OwnerMissing(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("lookup", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.AddItem(ctx, userID, "1")
		assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))
	})

	t.Run("deleted between lookup and write", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.cartRepo.EXPECT().Increment(ctx, userID, "1").Return(errors.Wrap(repository.ErrUserNotFound, "cart owner"))

		_, err := fx.service.AddItem(ctx, userID, "1")
		assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))
	})

	t.Run("get cart", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetCart(ctx, userID)
		assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))
	})
}

func TestCartService_RepositoryError(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to increment cart item")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().Increment(ctx, userID, "1").Return(dbErr)

	_, err := fx.service.AddItem(ctx, userID, "1")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCartService_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("untouched cart reports seeded zeros", func(t *testing.T) {
		service, userID := newMemoryCartService(t)

		cart, err := service.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, entity.Cart{"0": 0, "1": 0, "2": 0}, cart)
	})

	t.Run("add add remove", func(t *testing.T) {
		service, userID := newMemoryCartService(t)

		_, err := service.AddItem(ctx, userID, "7")
		require.NoError(t, err)
		_, err = service.AddItem(ctx, userID, "7")
		require.NoError(t, err)
		cart, err := service.RemoveItem(ctx, userID, "7")
		require.NoError(t, err)

		assert.Equal(t, entity.Cart{"7": 1}, cart)
	})

	t.Run("remove beyond adds stays at zero", func(t *testing.T) {
		service, userID := newMemoryCartService(t)

		_, err := service.AddItem(ctx, userID, "3")
		require.NoError(t, err)
		for range 3 {
			_, err = service.RemoveItem(ctx, userID, "3")
			require.NoError(t, err)
		}

		cart, err := service.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, cart.Quantity("3"))
	})

	t.Run("remove on empty cart", func(t *testing.T) {
		service, userID := newMemoryCartService(t)

		cart, err := service.RemoveItem(ctx, userID, "9")
		require.NoError(t, err)
		assert.Equal(t, 0, cart.Quantity("9"))
	})

	t.Run("unknown owner", func(t *testing.T) {
		service, _ := newMemoryCartService(t)

		_, err := service.AddItem(ctx, uuid.New(), "1")
		assert.True(t, errors.Is(err, domainerrors.ErrCartOwnerMissing))
	})
}

func TestCartService_ConcurrentAddsAreNotLost(t *testing.T) {
	service, userID := newMemoryCartService(t)
	ctx := context.Background()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := service.AddItem(ctx, userID, "5")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, workers, cart.Quantity("5"))
}
