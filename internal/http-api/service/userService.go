package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinehub/internal/http-api/middleware/auth"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/query"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	List(ctx context.Context, page, size int, sortTokens []string, email, name string) ([]models.User, int64, error)
	Get(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Replace(ctx context.Context, user *models.User) (*models.User, error)
	Patch(ctx context.Context, email string, ops []patch.Operation) (*models.User, error)
	Delete(ctx context.Context, email string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List retrieves a page of users, filtered by the optional email and name
// parameters (case-insensitive containment). An empty page surfaces as
// ErrNotFound, never as a zero-item page.
func (s *userService) List(ctx context.Context, page, size int, sortTokens []string, email, name string) ([]models.User, int64, error) {
	filter := query.NewFilter().
		Contains("email", email).
		Contains("name", name)
	orders := query.ParseSort(sortTokens)

	users, total, err := s.userRepo.List(ctx, filter, orders, page, size)
	if err != nil {
		return nil, 0, err
	}
	if len(users) == 0 {
		return nil, 0, ErrNotFound
	}
	return users, total, nil
}

func (s *userService) Get(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create registers a new user. The identity is caller-supplied (the email),
// so an existing identity is a conflict. The password is stored hashed.
func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Email) == "" || strings.TrimSpace(user.Name) == "" || user.Password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", ErrValidation)
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if len(user.Roles) == 0 {
		user.Roles = models.StringList{"user"}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %s already exists", ErrConflict, user.Email)
		}
		return nil, err
	}
	return user, nil
}

// Replace overwrites the mutable profile fields of the stored user with the
// supplied ones. Identity, password and roles are not touched.
func (s *userService) Replace(ctx context.Context, user *models.User) (*models.User, error) {
	stored, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(user.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	stored.Name = user.Name
	stored.Country = user.Country
	stored.Picture = user.Picture
	stored.Birthday = user.Birthday

	if err := s.userRepo.Save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Patch runs the partial-update pipeline: guard, apply to a copy, persist.
// All-or-nothing: a failing operation leaves the stored user untouched.
func (s *userService) Patch(ctx context.Context, email string, ops []patch.Operation) (*models.User, error) {
	stored, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := patch.Guard(ops, patch.UserProtected...); err != nil {
		return nil, err
	}

	edit := *stored
	if err := patch.ApplyUser(&edit, ops); err != nil {
		return nil, err
	}

	if strings.TrimSpace(edit.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if err := s.userRepo.Save(ctx, &edit); err != nil {
		return nil, err
	}
	return &edit, nil
}

func (s *userService) Delete(ctx context.Context, email string) error {
	if err := s.userRepo.Delete(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
