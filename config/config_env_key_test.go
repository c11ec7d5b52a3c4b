package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"images": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"token": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "IMAGES_BUCKETURL", want: "images.bucketUrl"},
		{envKey: "SECRETKEY_TOKEN", want: "secretKey.token"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
http:
  port: 4000
storage:
  driver: memory
secretKey:
  token: from-file
auth:
  tokenTTL: 1h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront.yaml"), content, 0o600))

	t.Setenv("SECRETKEY_TOKEN", "from-env")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("storefront")
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "from-env", cfg.SecretKey.Token)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills optional sections", func(t *testing.T) {
		cfg := &Config{}
		cfg.HTTP.Port = 4000
		cfg.Storage.Driver = StorageDriverMemory
		cfg.SecretKey.Token = "secret"

		require.NoError(t, cfg.applyDefaults())

		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, defaultCartSeedSize, cfg.Cart.SeedSize)
		assert.Equal(t, defaultImageBucketURL, cfg.Images.BucketURL)
		assert.Equal(t, "http://localhost:4000", cfg.Images.PublicBaseURL)
		assert.Equal(t, int64(defaultMaxUploadSize), cfg.Images.MaxUploadSize)
		assert.NotNil(t, cfg.Auth)
	})

	t.Run("trims trailing slash on public base url", func(t *testing.T) {
		cfg := &Config{Images: &ImagesConfig{PublicBaseURL: "https://shop.example.com/"}}
		cfg.Storage.Driver = StorageDriverMemory
		cfg.SecretKey.Token = "secret"

		require.NoError(t, cfg.applyDefaults())
		assert.Equal(t, "https://shop.example.com", cfg.Images.PublicBaseURL)
	})

	t.Run("requires secret", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = StorageDriverMemory

		assert.Error(t, cfg.applyDefaults())
	})

	t.Run("requires postgres section for postgres driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Token = "secret"

		assert.Error(t, cfg.applyDefaults())
	})

	t.Run("requires mongo uri for mongo driver", func(t *testing.T) {
		cfg := &Config{Mongo: &MongoConfig{}}
		cfg.Storage.Driver = StorageDriverMongo
		cfg.SecretKey.Token = "secret"

		assert.Error(t, cfg.applyDefaults())
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "sqlite"
		cfg.SecretKey.Token = "secret"

		assert.Error(t, cfg.applyDefaults())
	})
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
