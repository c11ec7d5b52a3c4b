package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is wrapped by every Verify failure.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue creates a signed session token embedding the user id.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature and claims of a token and returns the embedded user id.
	Verify(tokenString string) (uuid.UUID, error)
}
