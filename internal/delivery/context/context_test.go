package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	userID := uuid.New()
	SetUserID(c, userID)
	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	got, ok = GetUserIDFromContext(WithUserID(context.Background(), userID))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestRequestIDAndLogger(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := slog.New(slog.DiscardHandler)
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}
