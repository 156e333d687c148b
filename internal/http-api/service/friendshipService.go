package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"
	"cinehub/internal/http-api/query"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type FriendshipService interface {
	ListForUser(ctx context.Context, email string, page, size int, sortTokens []string) ([]models.Friendship, int64, error)
	Get(ctx context.Context, email, friend string) (*models.Friendship, error)
	Create(ctx context.Context, email, friend string) (*models.Friendship, error)
	// Patch confirms the friendship. requester is the authenticated party;
	// only the addressee of the request may confirm it.
	Patch(ctx context.Context, email, friend, requester string, ops []patch.Operation) (*models.Friendship, error)
	Delete(ctx context.Context, email, friend string) error
}

type friendshipService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	sequences      repository.SequenceRepository
}

func NewFriendshipService(
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	sequences repository.SequenceRepository,
) FriendshipService {
	return &friendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		sequences:      sequences,
	}
}

func (s *friendshipService) ListForUser(ctx context.Context, email string, page, size int, sortTokens []string) ([]models.Friendship, int64, error) {
	orders := query.ParseSort(sortTokens)

	friendships, total, err := s.friendshipRepo.ListForUser(ctx, email, orders, page, size)
	if err != nil {
		return nil, 0, err
	}
	if len(friendships) == 0 {
		return nil, 0, ErrNotFound
	}
	return friendships, total, nil
}

func (s *friendshipService) Get(ctx context.Context, email, friend string) (*models.Friendship, error) {
	friendship, err := s.friendshipRepo.GetByPair(ctx, email, friend)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return friendship, nil
}

// Create files a friend request from email to friend. A record for the pair
// in either stored order is a conflict; both parties must exist.
func (s *friendshipService) Create(ctx context.Context, email, friend string) (*models.Friendship, error) {
	if email == friend {
		return nil, fmt.Errorf("%w: cannot befriend yourself", ErrValidation)
	}

	for _, party := range []string{email, friend} {
		if _, err := s.userRepo.GetByEmail(ctx, party); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	if _, err := s.friendshipRepo.GetByPair(ctx, email, friend); err == nil {
		return nil, fmt.Errorf("%w: friendship between %s and %s already exists", ErrConflict, email, friend)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := s.sequences.Next(ctx, models.SequenceFriendship)
	if err != nil {
		return nil, err
	}

	friendship := &models.Friendship{
		ID:        id,
		User:      email,
		Friend:    friend,
		Confirmed: false,
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: friendship between %s and %s already exists", ErrConflict, email, friend)
		}
		return nil, err
	}
	return friendship, nil
}

// Patch runs the partial-update pipeline on the friendship. Confirmation is
// only valid from the addressee, and flipping confirmed on stamps since with
// the current time.
func (s *friendshipService) Patch(ctx context.Context, email, friend, requester string, ops []patch.Operation) (*models.Friendship, error) {
	stored, err := s.friendshipRepo.GetByPair(ctx, email, friend)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := patch.Guard(ops, patch.FriendshipProtected...); err != nil {
		return nil, err
	}

	edit := *stored
	if err := patch.ApplyFriendship(&edit, ops); err != nil {
		return nil, err
	}

	if edit.Confirmed && !stored.Confirmed {
		if requester != stored.Friend {
			return nil, fmt.Errorf("%w: only %s may confirm this friendship", ErrForbidden, stored.Friend)
		}
		now := time.Now()
		edit.Since = &now
	}
	if !edit.Confirmed && stored.Confirmed {
		return nil, fmt.Errorf("%w: a confirmed friendship cannot be unconfirmed", ErrValidation)
	}

	if err := s.friendshipRepo.Save(ctx, &edit); err != nil {
		return nil, err
	}
	return &edit, nil
}

func (s *friendshipService) Delete(ctx context.Context, email, friend string) error {
	stored, err := s.friendshipRepo.GetByPair(ctx, email, friend)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.friendshipRepo.Delete(ctx, stored.ID)
}
