// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shopper account.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the account password.
	Cart         Cart      // Item quantities owned by this user. May be nil on freshly loaded users.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}
