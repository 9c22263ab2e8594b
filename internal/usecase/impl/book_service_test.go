package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	mockRepo "bookshelf/internal/mocks/repository"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookService(bookRepo repository.BookRepository, cfg *config.Config) usecase.BookUsecase {
	return NewBookService(BookServiceParams{
		BookRepo: bookRepo,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestBookService_Create_SetsOwnerFromCaller(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	bookID := uuid.New()

	mockBookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(ctx context.Context, book *entity.Book) {
			require.NotNil(t, book.UserID)
			assert.Equal(t, ownerID, *book.UserID)
			book.ID = bookID
		}).
		Return(nil)

	book, err := service.Create(ctx, &usecase.CreateBookInput{
		Title:     "The Hobbit",
		Author:    "J.R.R. Tolkien",
		Editorial: "Allen & Unwin",
		Price:     25,
		Category:  entity.CategoryFantasy,
		Status:    entity.StatusInStock,
	}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, bookID, book.ID)
	assert.Equal(t, entity.CategoryFantasy, book.Category)
}

func TestBookService_Create_InvalidCategory(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	book, err := service.Create(context.Background(), &usecase.CreateBookInput{
		Title:     "The Hobbit",
		Author:    "J.R.R. Tolkien",
		Editorial: "Allen & Unwin",
		Price:     25,
		Category:  entity.Category("Romance"),
		Status:    entity.StatusInStock,
	}, uuid.New())
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockBookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookService_Create_NegativePrice(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	book, err := service.Create(context.Background(), &usecase.CreateBookInput{
		Title:     "The Hobbit",
		Author:    "J.R.R. Tolkien",
		Editorial: "Allen & Unwin",
		Price:     -1,
		Category:  entity.CategoryFantasy,
		Status:    entity.StatusInStock,
	}, uuid.New())
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBookService_FindAll_DefaultsToFirstPage(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	expected := []*entity.Book{{ID: uuid.New()}, {ID: uuid.New()}}

	mockBookRepo.EXPECT().
		FindAll(ctx, repository.BookFilter{Keyword: "", Limit: 3, Offset: 0}).
		Return(expected, nil)

	books, err := service.FindAll(ctx, &usecase.ListBooksInput{})
	require.NoError(t, err)
	assert.Equal(t, expected, books)
}

func TestBookService_FindAll_SecondPageOffset(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()

	mockBookRepo.EXPECT().
		FindAll(ctx, repository.BookFilter{Keyword: "", Limit: 3, Offset: 3}).
		Return([]*entity.Book{}, nil)

	books, err := service.FindAll(ctx, &usecase.ListBooksInput{Page: 2})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookService_FindAll_ConfiguredPageSize(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	cfg := &config.Config{
		Catalog: &config.CatalogConfig{PageSize: 10},
	}
	service := newBookService(mockBookRepo, cfg)

	ctx := context.Background()

	mockBookRepo.EXPECT().
		FindAll(ctx, repository.BookFilter{Keyword: "hobbit", Limit: 10, Offset: 10}).
		Return([]*entity.Book{}, nil)

	_, err := service.FindAll(ctx, &usecase.ListBooksInput{Page: 2, Keyword: "hobbit"})
	require.NoError(t, err)
}

func TestBookService_FindOne_MalformedID(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	book, err := service.FindOne(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBookID))
	mockBookRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBookService_FindOne_NotFound(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()

	mockBookRepo.EXPECT().
		FindByID(ctx, bookID).
		Return(nil, repository.ErrBookNotFound)

	book, err := service.FindOne(ctx, bookID.String())
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_FindOne_Success(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()
	expected := &entity.Book{ID: bookID, Title: "The Hobbit"}

	mockBookRepo.EXPECT().
		FindByID(ctx, bookID).
		Return(expected, nil)

	book, err := service.FindOne(ctx, bookID.String())
	require.NoError(t, err)
	assert.Equal(t, expected, book)
}

func TestBookService_Update_Success(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()
	newTitle := "The Hobbit, Revised"
	updated := &entity.Book{ID: bookID, Title: newTitle}

	mockBookRepo.EXPECT().
		Update(ctx, bookID, repository.BookPatch{Title: &newTitle}).
		Return(updated, nil)

	book, err := service.Update(ctx, bookID.String(), &usecase.UpdateBookInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, book.Title)
}

func TestBookService_Update_InvalidStatus(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	badStatus := entity.Status("Sold Out")

	book, err := service.Update(context.Background(), uuid.New().String(), &usecase.UpdateBookInput{Status: &badStatus})
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockBookRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookService_Update_NotFound(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()
	newTitle := "Whatever"

	mockBookRepo.EXPECT().
		Update(ctx, bookID, repository.BookPatch{Title: &newTitle}).
		Return(nil, repository.ErrBookNotFound)

	book, err := service.Update(ctx, bookID.String(), &usecase.UpdateBookInput{Title: &newTitle})
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_Remove_ReturnsPriorState(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()
	prior := &entity.Book{ID: bookID, Title: "The Hobbit"}

	mockBookRepo.EXPECT().
		Delete(ctx, bookID).
		Return(prior, nil)

	book, err := service.Remove(ctx, bookID.String())
	require.NoError(t, err)
	assert.Equal(t, prior, book)
}

func TestBookService_Remove_MalformedID(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	book, err := service.Remove(context.Background(), "42")
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBookID))
	mockBookRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookService_Remove_NotFound(t *testing.T) {
	mockBookRepo := mockRepo.NewMockBookRepository(t)
	service := newBookService(mockBookRepo, nil)

	ctx := context.Background()
	bookID := uuid.New()

	mockBookRepo.EXPECT().
		Delete(ctx, bookID).
		Return(nil, repository.ErrBookNotFound)

	book, err := service.Remove(ctx, bookID.String())
	require.Error(t, err)
	assert.Nil(t, book)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}
