package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Cart: &config.CartConfig{
			SeedSize: 3,
		},
		Images: &config.ImagesConfig{
			PublicBaseURL: "http://localhost:4000",
			MaxUploadSize: 1 << 10,
		},
	}
}
