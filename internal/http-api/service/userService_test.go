package service

import (
	"context"
	"encoding/json"
	"testing"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserList_EmptyPageIsNotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("List", mock.Anything, mock.Anything, mock.Anything, 0, 20).
		Return([]models.User{}, int64(0), nil)

	users, total, err := userService.List(context.Background(), 0, 20, nil, "", "")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, users)
	assert.Zero(t, total)
	mockUserRepo.AssertExpectations(t)
}

func TestUserCreate_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := userService.Create(context.Background(), &models.User{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StringList{"user"}, user.Roles)
	// Stored hashed, never in the clear
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockUserRepo.AssertExpectations(t)
}

func TestUserCreate_MissingFields(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	_, err := userService.Create(context.Background(), &models.User{Email: "ana@example.com"})

	assert.ErrorIs(t, err, ErrValidation)
	mockUserRepo.AssertNotCalled(t, "Create")
}

func TestUserCreate_ExistingEmailIsConflict(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(uniqueViolation())

	_, err := userService.Create(context.Background(), &models.User{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrConflict)
	mockUserRepo.AssertExpectations(t)
}

func TestUserPatch_ProtectedPath(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	stored := &models.User{Email: "ana@example.com", Name: "Ana"}
	mockUserRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)

	ops := []patch.Operation{{Op: "replace", Path: "/email", Value: json.RawMessage(`"new@example.com"`)}}
	_, err := userService.Patch(context.Background(), "ana@example.com", ops)

	assert.ErrorIs(t, err, patch.ErrProtectedPath)
	mockUserRepo.AssertNotCalled(t, "Save")
}

func TestUserPatch_AllOrNothing(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	stored := &models.User{Email: "ana@example.com", Name: "Ana"}
	mockUserRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)

	// First operation is fine, second targets an unknown path; nothing saves
	ops := []patch.Operation{
		{Op: "replace", Path: "/name", Value: json.RawMessage(`"Bea"`)},
		{Op: "replace", Path: "/nickname", Value: json.RawMessage(`"B"`)},
	}
	_, err := userService.Patch(context.Background(), "ana@example.com", ops)

	assert.ErrorIs(t, err, patch.ErrUnknownPath)
	assert.Equal(t, "Ana", stored.Name)
	mockUserRepo.AssertNotCalled(t, "Save")
}

func TestUserPatch_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	stored := &models.User{Email: "ana@example.com", Name: "Ana"}
	mockUserRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
	mockUserRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Bea" && u.Country != nil && *u.Country == "PT"
	})).Return(nil)

	ops := []patch.Operation{
		{Op: "replace", Path: "/name", Value: json.RawMessage(`"Bea"`)},
		{Op: "add", Path: "/country", Value: json.RawMessage(`"PT"`)},
	}
	user, err := userService.Patch(context.Background(), "ana@example.com", ops)

	assert.NoError(t, err)
	assert.Equal(t, "Bea", user.Name)
	mockUserRepo.AssertExpectations(t)
}

func TestUserDelete_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Delete", mock.Anything, "ghost@example.com").Return(gorm.ErrRecordNotFound)

	err := userService.Delete(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
	mockUserRepo.AssertExpectations(t)
}
