package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookInput defines the data required to create a book. The owning user
// is never part of this input; it is supplied separately from the
// authenticated caller's identity.
type CreateBookInput struct {
	Title     string
	Author    string
	Editorial string
	Price     int
	Category  entity.Category
	Status    entity.Status
}

// UpdateBookInput carries a partial update. Nil fields are left unchanged.
type UpdateBookInput struct {
	Title     *string
	Author    *string
	Editorial *string
	Price     *int
	Category  *entity.Category
	Status    *entity.Status
}

// ListBooksInput filters and pages a book listing. Page is 1-indexed and
// defaults to 1; the page size is a service-level constant from configuration.
type ListBooksInput struct {
	Page    int
	Keyword string
}

// BookUsecase defines the interface for book catalog operations. Identifier
// arguments are raw strings; syntactic validation is this layer's
// responsibility and fails fast before any store access.
type BookUsecase interface {
	Create(ctx context.Context, input *CreateBookInput, ownerID uuid.UUID) (*entity.Book, error)
	FindAll(ctx context.Context, input *ListBooksInput) ([]*entity.Book, error)
	FindOne(ctx context.Context, id string) (*entity.Book, error)
	Update(ctx context.Context, id string, input *UpdateBookInput) (*entity.Book, error)
	Remove(ctx context.Context, id string) (*entity.Book, error)
}
