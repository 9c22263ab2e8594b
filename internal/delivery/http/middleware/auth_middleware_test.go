package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/domain/service"
	mockSvc "bookshelf/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	userID := uuid.New()
	mockTokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/book", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID uuid.UUID
	next := func(c echo.Context) error {
		seenUserID = c.Get(KeyUserID).(uuid.UUID)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenUserID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/book", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	mockTokenSvc.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/book/abc", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(mockTokenSvc)

	mockTokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("failed to parse token structure"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/book/abc", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}
