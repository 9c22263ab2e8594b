package postgres

import (
	"context"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// Create persists a new book entity to the database.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	// Update the book entity with the generated ID and timestamps
	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	if err := repo.db.WithContext(ctx).First(&bookM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindAll retrieves books matching the filter, oldest first. The keyword, when
// present, restricts to titles containing it case-insensitively.
func (repo *bookRepository) FindAll(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).Model(&model.BookModel{}).Order("created_at")

	if filter.Keyword != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var bookMs []model.BookModel
	if err := query.Find(&bookMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookMs))
	for i := range bookMs {
		books = append(books, toBookDomain(&bookMs[i]))
	}

	return books, nil
}

// Update applies a partial update and returns the record as it stands after
// the update. Callers never see the pre-update state.
func (repo *bookRepository) Update(ctx context.Context, id uuid.UUID, patch repository.BookPatch) (*entity.Book, error) {
	values := patchValues(patch)

	// An empty patch changes nothing; the current record is the post-update state.
	if len(values) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.BookModel{}).
			Where("id = ?", id).
			Updates(values)
		if result.Error != nil {
			if isNotNullConstraintViolation(result.Error) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrBookNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the record matching the id and returns its prior state.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).Delete(&model.BookModel{}, "id = ?", id)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBookNotFound
	}

	return book, nil
}

// patchValues converts a BookPatch into the column map GORM applies.
// Nil fields are omitted so they remain untouched.
func patchValues(patch repository.BookPatch) map[string]any {
	values := make(map[string]any)

	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.Author != nil {
		values["author"] = *patch.Author
	}
	if patch.Editorial != nil {
		values["editorial"] = *patch.Editorial
	}
	if patch.Price != nil {
		values["price"] = *patch.Price
	}
	if patch.Category != nil {
		values["category"] = string(*patch.Category)
	}
	if patch.Status != nil {
		values["status"] = string(*patch.Status)
	}

	return values
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:        data.ID,
		Title:     data.Title,
		Author:    data.Author,
		Editorial: data.Editorial,
		Price:     data.Price,
		Category:  entity.Category(data.Category),
		Status:    entity.Status(data.Status),
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:        data.ID,
		Title:     data.Title,
		Author:    data.Author,
		Editorial: data.Editorial,
		Price:     data.Price,
		Category:  string(data.Category),
		Status:    string(data.Status),
		UserID:    data.UserID,
	}
}
