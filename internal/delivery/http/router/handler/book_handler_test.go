package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBookHandler_Create_RejectsClientSuppliedOwner(t *testing.T) {
	h := &BookHandler{}
	c, _ := newBookContext(t, `{
		"title": "The Hobbit",
		"author": "J.R.R. Tolkien",
		"editorial": "Allen & Unwin",
		"price": 25,
		"category": "Fantasy",
		"status": "In Stock",
		"user": "someone-else"
	}`)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestBookHandler_Create_RejectsUnknownCategory(t *testing.T) {
	h := &BookHandler{}
	c, _ := newBookContext(t, `{
		"title": "The Hobbit",
		"author": "J.R.R. Tolkien",
		"editorial": "Allen & Unwin",
		"price": 25,
		"category": "Romance",
		"status": "In Stock"
	}`)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestBookHandler_Create_RejectsMissingTitle(t *testing.T) {
	h := &BookHandler{}
	c, _ := newBookContext(t, `{
		"author": "J.R.R. Tolkien",
		"editorial": "Allen & Unwin",
		"price": 25,
		"category": "Fantasy",
		"status": "In Stock"
	}`)

	err := h.Create(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
