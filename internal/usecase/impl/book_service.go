package impl

import (
	"context"
	"log/slog"

	"bookshelf/config"
	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo repository.BookRepository
	pageSize int
	logger   *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	pageSize := 3
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.PageSize > 0 {
		pageSize = params.Config.Catalog.PageSize
	}

	return &bookService{
		bookRepo: params.BookRepo,
		pageSize: pageSize,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new book. The owner is always the authenticated caller's
// identifier; any owner value a client may have supplied never reaches this
// layer, so the invariant holds regardless of request contents.
func (srv *bookService) Create(ctx context.Context, input *usecase.CreateBookInput, ownerID uuid.UUID) (*entity.Book, error) {
	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "please enter a valid category")
	}
	if !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "please enter a valid status")
	}
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	book := &entity.Book{
		Title:     input.Title,
		Author:    input.Author,
		Editorial: input.Editorial,
		Price:     input.Price,
		Category:  input.Category,
		Status:    input.Status,
		UserID:    &ownerID,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Warn("Failed to create book", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Debug("Book created", slog.Any("bookID", book.ID), slog.Any("ownerID", ownerID))

	return book, nil
}

// FindAll lists books, paged by the configured page size. The keyword, when
// present, restricts to titles containing it case-insensitively. The result
// carries no total count; callers cannot distinguish the last page from an
// empty one without a further call.
func (srv *bookService) FindAll(ctx context.Context, input *usecase.ListBooksInput) ([]*entity.Book, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	filter := repository.BookFilter{
		Keyword: input.Keyword,
		Limit:   srv.pageSize,
		Offset:  srv.pageSize * (page - 1),
	}

	books, err := srv.bookRepo.FindAll(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list books", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// FindOne retrieves a single book. A malformed identifier fails fast before
// any store access.
func (srv *bookService) FindOne(ctx context.Context, id string) (*entity.Book, error) {
	bookID, err := srv.parseBookID(id)
	if err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return book, nil
}

// Update applies a partial update and returns the record after the update.
func (srv *bookService) Update(ctx context.Context, id string, input *usecase.UpdateBookInput) (*entity.Book, error) {
	bookID, err := srv.parseBookID(id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "please enter a valid category")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "please enter a valid status")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	patch := repository.BookPatch{
		Title:     input.Title,
		Author:    input.Author,
		Editorial: input.Editorial,
		Price:     input.Price,
		Category:  input.Category,
		Status:    input.Status,
	}

	book, err := srv.bookRepo.Update(ctx, bookID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}
		srv.log(ctx).Warn("Failed to update book", slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update book")
	}

	srv.log(ctx).Debug("Book updated", slog.Any("bookID", bookID))

	return book, nil
}

// Remove deletes a book and returns its prior state.
func (srv *bookService) Remove(ctx context.Context, id string) (*entity.Book, error) {
	bookID, err := srv.parseBookID(id)
	if err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.Delete(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}
		srv.log(ctx).Warn("Failed to delete book", slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete book")
	}

	srv.log(ctx).Debug("Book deleted", slog.Any("bookID", bookID))

	return book, nil
}

// parseBookID validates the identifier's syntax before any store access.
func (srv *bookService) parseBookID(id string) (uuid.UUID, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidBookID, "please enter a correct id")
	}

	return bookID, nil
}
