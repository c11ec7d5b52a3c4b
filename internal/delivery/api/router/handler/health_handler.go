// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// Root answers the liveness probe of the original storefront clients.
func Root(c echo.Context) error {
	return response.Text(c, http.StatusOK, "Storefront API is running")
}

// HealthCheck reports service health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
