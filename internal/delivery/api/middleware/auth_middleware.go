package middleware

import (
	"log/slog"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderAuthToken carries the session token.
const HeaderAuthToken = "auth-token"

// AuthMiddleware rejects requests without a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate verifies the auth-token header and attaches the user ID to the echo and request contexts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		tokenString := c.Request().Header.Get(HeaderAuthToken)
		if tokenString == "" {
			logger.Debug("Request rejected, missing auth token", slog.String("path", c.Path()))

			return response.Unauthorized(c)
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			logger.Warn("Request rejected, invalid auth token", slog.String("path", c.Path()), slog.Any("error", err))

			return response.Unauthorized(c)
		}

		deliverycontext.SetUserID(c, userID)
		ctx = deliverycontext.WithUserID(ctx, userID)
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.String("user_id", userID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
