package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "checkout-42", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "a b"},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var seen string
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.wantSame {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestLoggerMiddleware_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf)
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.POST("/getcart", func(c echo.Context) error {
		// stands in for the auth gate
		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLogger(ctx).With(slog.String("user_id", "user-1"))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return c.String(http.StatusOK, "{}")
	})

	req := httptest.NewRequest(http.MethodPost, "/getcart", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	e.ServeHTTP(httptest.NewRecorder(), req)

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "HTTP Request", records[0]["msg"])
	assert.Equal(t, "req-7", records[0]["request_id"])
	assert.Equal(t, "user-1", records[0]["user_id"])
	assert.Equal(t, "/getcart", records[0]["route"])
	assert.EqualValues(t, http.StatusOK, records[0]["status"])
}

func TestLoggerMiddleware_RecordsHandledStatus(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		path       string
		handlerErr error
		wantStatus int
		wantLogged bool
		wantLevel  string
	}{
		{
			name:       "client error in debug",
			debug:      true,
			path:       "/addtocart",
			handlerErr: echo.NewHTTPError(http.StatusBadRequest, "bad"),
			wantStatus: http.StatusBadRequest,
			wantLogged: true,
			wantLevel:  "WARN",
		},
		{
			name:       "server error outside debug",
			path:       "/addtocart",
			handlerErr: echo.NewHTTPError(http.StatusServiceUnavailable, "down"),
			wantStatus: http.StatusServiceUnavailable,
			wantLogged: true,
			wantLevel:  "ERROR",
		},
		{
			name:       "success outside debug",
			path:       "/addtocart",
			wantStatus: http.StatusOK,
		},
		{
			name:       "health probe in debug",
			debug:      true,
			path:       healthPath,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newJSONLogger(&buf)
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.Any(tt.path, func(c echo.Context) error {
				if tt.handlerErr != nil {
					return tt.handlerErr
				}

				return c.NoContent(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			records := decodeRecords(t, &buf)
			if !tt.wantLogged {
				assert.Empty(t, records)

				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.EqualValues(t, tt.wantStatus, records[0]["status"])
		})
	}
}
