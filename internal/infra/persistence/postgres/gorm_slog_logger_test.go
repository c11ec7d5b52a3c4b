package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "record not found",
			err:       gorm.ErrRecordNotFound,
			wantLevel: "DEBUG",
			wantMsg:   "GORM query rejected",
		},
		{
			name:      "unique violation",
			err:       errors.WithStack(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}),
			wantLevel: "DEBUG",
			wantMsg:   "GORM query rejected",
		},
		{
			name:      "connection failure",
			err:       errors.New("connection refused"),
			wantLevel: "ERROR",
			wantMsg:   "GORM query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			gormLogger := newGormSlogLogger(base, &config.Config{})

			gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
				return `INSERT INTO "users"`, 0
			}, tt.err)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.wantMsg, record["msg"])
			assert.Equal(t, `INSERT INTO "users"`, record["sql"])
		})
	}
}

func TestGormSlogLogger_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gormLogger := newGormSlogLogger(base, &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, buf.String())
}
