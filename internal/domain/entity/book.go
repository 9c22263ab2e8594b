package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a book into one of the fixed catalog categories.
type Category string

// The catalog's closed set of categories. These are the wire values
// exchanged with clients and stored in the database.
const (
	CategoryAdventure Category = "Adventure"
	CategoryCrime     Category = "Crime"
	CategoryFantasy   Category = "Fantasy"
)

// IsValid reports whether the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdventure, CategoryCrime, CategoryFantasy:
		return true
	}

	return false
}

// Status describes the stock availability of a book.
type Status string

// The closed set of stock statuses.
const (
	StatusInStock    Status = "In Stock"
	StatusOutOfStock Status = "Out of Stock"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusInStock, StatusOutOfStock:
		return true
	}

	return false
}

// Book represents a single catalog record. A book is weakly associated with
// the user that created it: UserID references a User by identifier and is
// always derived from the authenticated caller, never from client input.
type Book struct {
	ID        uuid.UUID  // The unique identifier for the book, generated by the store.
	Title     string     // The book's title.
	Author    string     // The book's author.
	Editorial string     // The publishing house.
	Price     int        // The price in whole currency units, never negative.
	Category  Category   // One of the fixed catalog categories.
	Status    Status     // Stock availability.
	UserID    *uuid.UUID // The owning user, set at creation from the caller's identity.
	CreatedAt time.Time  // Timestamp of when this record was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this record.
}
