// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the catalog.
// The password is never kept in plaintext; only the bcrypt hash is stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the store.
	Name         string    // The user's display name.
	Email        string    // The user's email address, unique across all users.
	PasswordHash string    // The bcrypt hash of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
