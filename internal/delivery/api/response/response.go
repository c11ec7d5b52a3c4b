// Package response renders the JSON bodies the storefront clients expect.
package response

import (
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthFailureMessage is returned for every rejected token.
const AuthFailureMessage = "Please authenticate using a valid token"

// ErrorResponse defines the structure for error responses.
// Login failures report the message under "error"; every other endpoint uses "errors".
type ErrorResponse struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// AuthErrorResponse is the body of a 401 from the auth gate.
type AuthErrorResponse struct {
	Errors string `json:"errors"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// NameResponse is returned by product mutations.
type NameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// UploadResponse is returned by image upload. success is numeric for client compatibility.
type UploadResponse struct {
	Success  int    `json:"success"`
	ImageURL string `json:"image_url"`
}

// Success returns a JSON body as is
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Text returns a plain text body
func Text(c echo.Context, statusCode int, body string) error {
	return c.String(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Errors:  message,
		Code:    errorCode,
	})
}

// LoginError returns an error response keyed by "error"
func LoginError(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    errorCode,
	})
}

// Unauthorized returns the auth gate rejection
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, AuthErrorResponse{Errors: AuthFailureMessage})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleLoginError renders domain errors of the login endpoint, leaving others to the central handler
func HandleLoginError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return LoginError(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
