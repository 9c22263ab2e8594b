package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	mockRepo "bookshelf/internal/mocks/repository"
	mockSvc "bookshelf/internal/mocks/service"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(userRepo repository.UserRepository, hasher *mockSvc.MockPasswordHasher, tokenSvc *mockSvc.MockTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAuthService_SignUp_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()
	userID := uuid.New()

	mockHasher.EXPECT().
		Hash("plaintext-password").
		Return("$2a$10$hashedhashedhashedhashed", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "$2a$10$hashedhashedhashedhashed", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)

	mockTokenSvc.EXPECT().
		GenerateToken(userID).
		Return("signed-token", nil)

	output, err := service.SignUp(ctx, &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "plaintext-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("plaintext-password").
		Return("$2a$10$hashedhashedhashedhashed", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	output, err := service.SignUp(ctx, &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "plaintext-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("plaintext-password").
		Return("", errors.New("bcrypt failure"))

	output, err := service.SignUp(ctx, &usecase.SignUpInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "plaintext-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{
			ID:           userID,
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hashedhashedhashedhashed",
		}, nil)

	mockHasher.EXPECT().
		Check("plaintext-password", "$2a$10$hashedhashedhashedhashed").
		Return(true)

	mockTokenSvc.EXPECT().
		GenerateToken(userID).
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "plaintext-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := newAuthService(mockUserRepo, mockHasher, mockTokenSvc)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{
			ID:           uuid.New(),
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hashedhashedhashedhashed",
		}, nil)

	mockHasher.EXPECT().
		Check("wrong-password", "$2a$10$hashedhashedhashedhashed").
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	// Wrong password and unknown email must be indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mockTokenSvc.AssertNotCalled(t, "GenerateToken", mock.Anything)
}
