package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func TestRegisterUseCase_Success(t *testing.T) {
	var created *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(1)
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Alice",
		Email:    "Alice@Example.COM",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, user.RoleUser, result.User.Role)
	require.NotNil(t, created)
	assert.Equal(t, "hashed:password123", created.PasswordHash())
}

func TestRegisterUseCase_MissingCredentials(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewLogger())

	for _, cmd := range []RegisterCommand{
		{Name: "Alice", Email: "", Password: "password123"},
		{Name: "Alice", Email: "alice@example.com", Password: ""},
	} {
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
	}
}

func TestRegisterUseCase_InvalidEmail(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRegisterUseCase_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegisterUseCase_DuplicateRace(t *testing.T) {
	// Pre-check passes but the store's unique constraint fires on insert.
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			return apperrors.NewUserAlreadyExistsError()
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestRegisterUseCase_HashFailure(t *testing.T) {
	hasher := &mockHasher{
		HashFunc: func(password string) (string, error) {
			return "", errors.New("entropy exhausted")
		},
	}
	uc := NewRegisterUseCase(&mockUserRepository{}, hasher, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.NotContains(t, appErr.Message, "entropy")
}
