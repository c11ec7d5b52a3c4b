// Package mongo implements the persistence layer on MongoDB, storing each user's cart embedded in the user document.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollection    = "users"
	productsCollection = "products"

	defaultDatabase = "storefront"
	defaultTimeout  = 10 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and registers ping, index and disconnect hooks.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(dbName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("MongoDB connected", slog.String("database", dbName))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(client.Disconnect(ctx), "disconnect MongoDB")
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on for duplicate detection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
	}); err != nil {
		return errors.Wrap(err, "create users email index")
	}

	if _, err := db.Collection(productsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_products_id"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetName("idx_products_category_id"),
		},
	}); err != nil {
		return errors.Wrap(err, "create products indexes")
	}

	return nil
}
