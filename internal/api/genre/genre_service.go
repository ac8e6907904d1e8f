package genre

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kanishkPamecha/Movies/internal/types"
)

var _ GenreService = (*GenreServiceImpl)(nil)

type GenreService interface {
	CreateGenre(ctx context.Context, name string) (*types.Genre, error)
	GetGenre(ctx context.Context, id uuid.UUID) (*types.Genre, error)
	ListGenres(ctx context.Context) ([]types.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*types.Genre, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}

type GenreServiceImpl struct {
	logger *slog.Logger
	repo   GenreRepo
}

func NewGenreService(repo GenreRepo, logger *slog.Logger) *GenreServiceImpl {
	return &GenreServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *GenreServiceImpl) CreateGenre(ctx context.Context, name string) (*types.Genre, error) {
	if name == "" {
		return nil, fmt.Errorf("genre name is required: %w", types.ErrValidation)
	}
	return s.repo.CreateGenre(ctx, name)
}

func (s *GenreServiceImpl) GetGenre(ctx context.Context, id uuid.UUID) (*types.Genre, error) {
	return s.repo.GetGenreByID(ctx, id)
}

func (s *GenreServiceImpl) ListGenres(ctx context.Context) ([]types.Genre, error) {
	return s.repo.ListGenres(ctx)
}

func (s *GenreServiceImpl) UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*types.Genre, error) {
	if name == "" {
		return nil, fmt.Errorf("genre name is required: %w", types.ErrValidation)
	}
	return s.repo.UpdateGenre(ctx, id, name)
}

func (s *GenreServiceImpl) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGenre(ctx, id)
}
