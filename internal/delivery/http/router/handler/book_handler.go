package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book catalog handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type createBookRequest struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Editorial string `json:"editorial" validate:"required"`
	Price     int    `json:"price" validate:"gte=0"`
	Category  string `json:"category" validate:"required,oneof=Adventure Crime Fantasy"`
	Status    string `json:"status" validate:"required,oneof='In Stock' 'Out of Stock'"`
	// The owner is derived from the access token; a client-supplied value is
	// rejected outright.
	User *string `json:"user" validate:"isdefault"`
}

type updateBookRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Author    *string `json:"author" validate:"omitempty,min=1"`
	Editorial *string `json:"editorial" validate:"omitempty,min=1"`
	Price     *int    `json:"price" validate:"omitempty,gte=0"`
	Category  *string `json:"category" validate:"omitempty,oneof=Adventure Crime Fantasy"`
	Status    *string `json:"status" validate:"omitempty,oneof='In Stock' 'Out of Stock'"`
	User      *string `json:"user" validate:"isdefault"`
}

// bookResponse is the wire representation of a book record.
type bookResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Editorial string     `json:"editorial"`
	Price     int        `json:"price"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	UserID    *uuid.UUID `json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toBookResponse(book *entity.Book) bookResponse {
	return bookResponse{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Editorial: book.Editorial,
		Price:     book.Price,
		Category:  string(book.Category),
		Status:    string(book.Status),
		UserID:    book.UserID,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

func toBookListResponse(books []*entity.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, toBookResponse(book))
	}

	return out
}

// Create handles the book creation request. The owning user is taken from the
// authenticated caller's identity set by the auth middleware.
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	callerID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	book, err := h.uc.Create(c.Request().Context(), &usecase.CreateBookInput{
		Title:     req.Title,
		Author:    req.Author,
		Editorial: req.Editorial,
		Price:     req.Price,
		Category:  entity.Category(req.Category),
		Status:    entity.Status(req.Status),
	}, callerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book), "Book created successfully")
}

// FindAll handles the book listing request with optional page and keyword
// query parameters.
func (h *BookHandler) FindAll(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	books, err := h.uc.FindAll(c.Request().Context(), &usecase.ListBooksInput{
		Page:    page,
		Keyword: c.QueryParam("keyword"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookListResponse(books), "Books retrieved successfully")
}

// FindOne handles the single-book lookup request.
func (h *BookHandler) FindOne(c echo.Context) error {
	book, err := h.uc.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "Book retrieved successfully")
}

// Update handles the partial book update request and returns the record after
// the update is applied.
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateBookInput{
		Title:     req.Title,
		Author:    req.Author,
		Editorial: req.Editorial,
		Price:     req.Price,
	}
	if req.Category != nil {
		category := entity.Category(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := entity.Status(*req.Status)
		input.Status = &status
	}

	book, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "Book updated successfully")
}

// Remove handles the book deletion request and returns the deleted record's
// prior state.
func (h *BookHandler) Remove(c echo.Context) error {
	book, err := h.uc.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "Book deleted successfully")
}
