package repository

import (
	"context"
	"errors"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookFilter restricts and pages a book listing. Keyword, when non-empty,
// matches titles by case-insensitive substring.
type BookFilter struct {
	Keyword string
	Offset  int
	Limit   int
}

// BookPatch carries a partial update. Nil fields are left untouched.
type BookPatch struct {
	Title     *string
	Author    *string
	Editorial *string
	Price     *int
	Category  *entity.Category
	Status    *entity.Status
}

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// Create persists a new book entity and fills in the generated ID and timestamps.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindAll retrieves books matching the filter, in insertion order.
	FindAll(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// Update applies a partial update and returns the record after the update.
	// Returns ErrBookNotFound when no record matches the id.
	Update(ctx context.Context, id uuid.UUID, patch BookPatch) (*entity.Book, error)

	// Delete removes the record and returns its prior state.
	// Returns ErrBookNotFound when no record matches the id.
	Delete(ctx context.Context, id uuid.UUID) (*entity.Book, error)
}
