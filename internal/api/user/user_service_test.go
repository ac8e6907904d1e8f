package user

import (
	"context"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanishkPamecha/Movies/internal/types"
)

// MockUserRepo is a mock implementation of the UserRepo interface
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]types.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.User), args.Error(1)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*types.User, error) {
	args := m.Called(ctx, id, username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestUpdateUserProfile(t *testing.T) {
	logger := slog.Default()
	userID := uuid.New()

	t.Run("Success_UsernameOnly", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, logger)
		want := &types.User{ID: userID, Username: "new-name", Email: "a@x.com"}

		mockRepo.On("UpdateUser", mock.Anything, userID, strPtr("new-name"), (*string)(nil), (*string)(nil)).
			Return(want, nil)

		got, err := svc.UpdateUserProfile(context.Background(), userID, types.UpdateProfileParams{
			Username: strPtr("new-name"),
		})

		require.NoError(t, err)
		assert.Equal(t, "new-name", got.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success_PasswordRehashed", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, logger)
		want := &types.User{ID: userID, Username: "ann"}

		mockRepo.On("UpdateUser", mock.Anything, userID, (*string)(nil), (*string)(nil),
			mock.MatchedBy(func(hash *string) bool {
				if hash == nil {
					return false
				}
				return bcrypt.CompareHashAndPassword([]byte(*hash), []byte("new-password")) == nil
			})).
			Return(want, nil)

		_, err := svc.UpdateUserProfile(context.Background(), userID, types.UpdateProfileParams{
			Password: strPtr("new-password"),
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NoFields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, logger)

		_, err := svc.UpdateUserProfile(context.Background(), userID, types.UpdateProfileParams{})

		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "UpdateUser")
	})

	t.Run("EmptyEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, logger)

		_, err := svc.UpdateUserProfile(context.Background(), userID, types.UpdateProfileParams{
			Email: strPtr(""),
		})

		assert.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		svc := NewUserService(mockRepo, logger)

		mockRepo.On("UpdateUser", mock.Anything, userID, (*string)(nil), strPtr("taken@x.com"), (*string)(nil)).
			Return(nil, types.ErrConflict)

		_, err := svc.UpdateUserProfile(context.Background(), userID, types.UpdateProfileParams{
			Email: strPtr("taken@x.com"),
		})

		assert.ErrorIs(t, err, types.ErrConflict)
	})
}

func TestListUsers(t *testing.T) {
	logger := slog.Default()
	mockRepo := new(MockUserRepo)
	svc := NewUserService(mockRepo, logger)

	stored := []types.User{
		{ID: uuid.New(), Username: "ann", Email: "a@x.com", PasswordHash: "$2a$10$secret", IsAdmin: true},
		{ID: uuid.New(), Username: "bob", Email: "b@x.com", PasswordHash: "$2a$10$secret"},
	}
	mockRepo.On("ListUsers", mock.Anything).Return(stored, nil)

	got, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, stored[0].ID, got[0].ID)
	assert.True(t, got[0].IsAdmin)
	assert.Equal(t, "bob", got[1].Username)
	mockRepo.AssertExpectations(t)
}
