package genre

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kanishkPamecha/Movies/internal/types"
)

// MockGenreRepo is a mock implementation of the GenreRepo interface
type MockGenreRepo struct {
	mock.Mock
}

func (m *MockGenreRepo) CreateGenre(ctx context.Context, name string) (*types.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Genre), args.Error(1)
}

func (m *MockGenreRepo) GetGenreByID(ctx context.Context, id uuid.UUID) (*types.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Genre), args.Error(1)
}

func (m *MockGenreRepo) ListGenres(ctx context.Context) ([]types.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Genre), args.Error(1)
}

func (m *MockGenreRepo) UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*types.Genre, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Genre), args.Error(1)
}

func (m *MockGenreRepo) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateGenreService(t *testing.T) {
	logger := slog.Default()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockGenreRepo)
		svc := NewGenreService(mockRepo, logger)
		want := &types.Genre{ID: uuid.New(), Name: "Horror"}
		mockRepo.On("CreateGenre", mock.Anything, "Horror").Return(want, nil)

		got, err := svc.CreateGenre(context.Background(), "Horror")

		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo := new(MockGenreRepo)
		svc := NewGenreService(mockRepo, logger)

		_, err := svc.CreateGenre(context.Background(), "")

		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "CreateGenre")
	})
}

func TestUpdateGenreService(t *testing.T) {
	logger := slog.Default()
	id := uuid.New()

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo := new(MockGenreRepo)
		svc := NewGenreService(mockRepo, logger)

		_, err := svc.UpdateGenre(context.Background(), id, "")

		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "UpdateGenre")
	})

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		mockRepo := new(MockGenreRepo)
		svc := NewGenreService(mockRepo, logger)
		mockRepo.On("UpdateGenre", mock.Anything, id, "Horror").Return(nil, types.ErrNotFound)

		_, err := svc.UpdateGenre(context.Background(), id, "Horror")

		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
