// Package persistence selects the storage backend configured by storage.driver.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the parameters required to open the store.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes the repositories of the selected backend to the container.
type Repositories struct {
	fx.Out

	Users    repository.UserRepository
	Carts    repository.CartRepository
	Products repository.ProductRepository
}

// New opens the configured backend and builds its repositories.
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Opening storage", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:    postgres.NewUserRepository(db),
			Carts:    postgres.NewCartRepository(db),
			Products: postgres.NewProductRepository(db),
		}, nil

	case config.StorageDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:    mongo.NewUserRepository(db),
			Carts:    mongo.NewCartRepository(db),
			Products: mongo.NewProductRepository(db),
		}, nil

	case config.StorageDriverMemory:
		store := memory.New()

		return Repositories{
			Users:    store.Users(),
			Carts:    store.Carts(),
			Products: store.Products(),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}
