package service

import (
	"context"
	"encoding/json"
	"testing"

	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newFriendshipTestService() (FriendshipService, *MockFriendshipRepository, *MockUserRepository, *MockSequenceRepository) {
	friendshipRepo := new(MockFriendshipRepository)
	userRepo := new(MockUserRepository)
	sequences := new(MockSequenceRepository)
	return NewFriendshipService(friendshipRepo, userRepo, sequences),
		friendshipRepo, userRepo, sequences
}

func TestFriendshipCreate_Success(t *testing.T) {
	svc, friendshipRepo, userRepo, sequences := newFriendshipTestService()

	userRepo.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&models.User{Email: "ana@example.com"}, nil)
	userRepo.On("GetByEmail", mock.Anything, "bea@example.com").
		Return(&models.User{Email: "bea@example.com"}, nil)
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	sequences.On("Next", mock.Anything, models.SequenceFriendship).Return(int64(11), nil)
	friendshipRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *models.Friendship) bool {
		return f.ID == 11 && f.User == "ana@example.com" && f.Friend == "bea@example.com" &&
			!f.Confirmed && f.Since == nil
	})).Return(nil)

	friendship, err := svc.Create(context.Background(), "ana@example.com", "bea@example.com")

	assert.NoError(t, err)
	assert.False(t, friendship.Confirmed)
	assert.Nil(t, friendship.Since)
	friendshipRepo.AssertExpectations(t)
}

func TestFriendshipCreate_SelfBefriend(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	_, err := svc.Create(context.Background(), "ana@example.com", "ana@example.com")

	assert.ErrorIs(t, err, ErrValidation)
	friendshipRepo.AssertNotCalled(t, "Create")
}

func TestFriendshipCreate_UnknownParty(t *testing.T) {
	svc, friendshipRepo, userRepo, _ := newFriendshipTestService()

	userRepo.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&models.User{Email: "ana@example.com"}, nil)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "ana@example.com", "ghost@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
	friendshipRepo.AssertNotCalled(t, "Create")
}

func TestFriendshipCreate_ExistingPairIsConflict(t *testing.T) {
	svc, friendshipRepo, userRepo, _ := newFriendshipTestService()

	userRepo.On("GetByEmail", mock.Anything, mock.Anything).
		Return(&models.User{}, nil)
	// Stored with the sides swapped: the pair lookup still finds it
	existing := &models.Friendship{ID: 1, User: "bea@example.com", Friend: "ana@example.com"}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(existing, nil)

	_, err := svc.Create(context.Background(), "ana@example.com", "bea@example.com")

	assert.ErrorIs(t, err, ErrConflict)
	friendshipRepo.AssertNotCalled(t, "Create")
}

func confirmOps() []patch.Operation {
	return []patch.Operation{{Op: "replace", Path: "/confirmed", Value: json.RawMessage(`true`)}}
}

func TestFriendshipPatch_AddresseeConfirms(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	stored := &models.Friendship{ID: 1, User: "ana@example.com", Friend: "bea@example.com"}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(stored, nil)
	friendshipRepo.On("Save", mock.Anything, mock.MatchedBy(func(f *models.Friendship) bool {
		return f.Confirmed && f.Since != nil
	})).Return(nil)

	friendship, err := svc.Patch(context.Background(),
		"ana@example.com", "bea@example.com", "bea@example.com", confirmOps())

	assert.NoError(t, err)
	assert.True(t, friendship.Confirmed)
	assert.NotNil(t, friendship.Since)
	friendshipRepo.AssertExpectations(t)
}

func TestFriendshipPatch_RequesterCannotConfirm(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	stored := &models.Friendship{ID: 1, User: "ana@example.com", Friend: "bea@example.com"}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(stored, nil)

	_, err := svc.Patch(context.Background(),
		"ana@example.com", "bea@example.com", "ana@example.com", confirmOps())

	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, stored.Confirmed)
	friendshipRepo.AssertNotCalled(t, "Save")
}

func TestFriendshipPatch_CannotUnconfirm(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	stored := &models.Friendship{ID: 1, User: "ana@example.com", Friend: "bea@example.com", Confirmed: true}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(stored, nil)

	ops := []patch.Operation{{Op: "replace", Path: "/confirmed", Value: json.RawMessage(`false`)}}
	_, err := svc.Patch(context.Background(),
		"ana@example.com", "bea@example.com", "bea@example.com", ops)

	assert.ErrorIs(t, err, ErrValidation)
	friendshipRepo.AssertNotCalled(t, "Save")
}

func TestFriendshipPatch_ProtectedSince(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	stored := &models.Friendship{ID: 1, User: "ana@example.com", Friend: "bea@example.com"}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(stored, nil)

	ops := []patch.Operation{{Op: "replace", Path: "/since", Value: json.RawMessage(`"2020-01-01T00:00:00Z"`)}}
	_, err := svc.Patch(context.Background(),
		"ana@example.com", "bea@example.com", "bea@example.com", ops)

	assert.ErrorIs(t, err, patch.ErrProtectedPath)
	friendshipRepo.AssertNotCalled(t, "Save")
}

func TestFriendshipGet_NotFound(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), "ana@example.com", "bea@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFriendshipDelete_RemovesStoredRecord(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	// Stored with the sides swapped relative to the request
	stored := &models.Friendship{ID: 5, User: "bea@example.com", Friend: "ana@example.com"}
	friendshipRepo.On("GetByPair", mock.Anything, "ana@example.com", "bea@example.com").
		Return(stored, nil)
	friendshipRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Delete(context.Background(), "ana@example.com", "bea@example.com")

	assert.NoError(t, err)
	friendshipRepo.AssertExpectations(t)
}

func TestFriendshipListForUser_EmptyIsNotFound(t *testing.T) {
	svc, friendshipRepo, _, _ := newFriendshipTestService()

	friendshipRepo.On("ListForUser", mock.Anything, "ana@example.com", mock.Anything, 0, 20).
		Return([]models.Friendship{}, int64(0), nil)

	_, _, err := svc.ListForUser(context.Background(), "ana@example.com", 0, 20, nil)

	assert.ErrorIs(t, err, ErrNotFound)
}
