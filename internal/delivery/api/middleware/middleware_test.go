package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		token      string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "invalid token",
			token: "garbage",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("garbage").Return(uuid.Nil, errors.Wrap(service.ErrInvalidToken, "malformed"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:  "valid token",
			token: "signed.token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("signed.token").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/getcart", nil)
			if tt.token != "" {
				req.Header.Set(HeaderAuthToken, tt.token)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				fromCtx, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, userID, fromCtx)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantCalled {
				assert.JSONEq(t, `{"errors":"Please authenticate using a valid token"}`, rec.Body.String())
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrEmailTaken),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"errors":"Existing user found with same email id","code":"EMAIL_TAKEN"}`,
		},
		{
			name:       "integrity error hides details",
			err:        errors.Wrap(domainerrors.ErrCartOwnerMissing, "user 123 gone"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"errors":"Internal server error","code":"INTEGRITY_ERROR"}`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"errors":"Not Found","code":"HTTP_ERROR"}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"errors":"Internal server error, please try again later","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
			c := e.NewContext(req, rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
