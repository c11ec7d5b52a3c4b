// Command migrate applies or inspects the embedded PostgreSQL schema migrations.
//
//	migrate [up|down|status]
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	if err := run(ctx, db, command); err != nil {
		logger.Error("Migration command failed", slog.String("command", command), slog.Any("error", err))
		cancel()
		_ = app.Stop(context.Background())
		os.Exit(1)
	}

	logger.Info("Migration command completed", slog.String("command", command))
}

func run(ctx context.Context, db *gorm.DB, command string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	switch command {
	case "up":
		return postgres.Migrate(ctx, sqlDB)
	case "down":
		return postgres.MigrateDown(ctx, sqlDB)
	case "status":
		return postgres.MigrationStatus(ctx, sqlDB)
	default:
		return errors.Errorf("unknown command %q, expected up, down or status", command)
	}
}
