package movie

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/kanishkPamecha/Movies/internal/types"
)

const listCacheKey = "movies:all"
const listCacheTTL = 60 * time.Second

var _ MovieService = (*MovieServiceImpl)(nil)

type MovieService interface {
	CreateMovie(ctx context.Context, params types.CreateMovieParams) (*types.Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*types.Movie, error)
	ListMovies(ctx context.Context) ([]types.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, params types.UpdateMovieParams) (*types.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type MovieServiceImpl struct {
	logger *slog.Logger
	repo   MovieRepo
	cache  *cache.Cache
}

func NewMovieService(repo MovieRepo, logger *slog.Logger) *MovieServiceImpl {
	return &MovieServiceImpl{
		logger: logger,
		repo:   repo,
		cache:  cache.New(listCacheTTL, 5*time.Minute),
	}
}

func (s *MovieServiceImpl) CreateMovie(ctx context.Context, params types.CreateMovieParams) (*types.Movie, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("movie name is required: %w", types.ErrValidation)
	}

	m, err := s.repo.CreateMovie(ctx, params)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(listCacheKey)
	return m, nil
}

func (s *MovieServiceImpl) GetMovie(ctx context.Context, id uuid.UUID) (*types.Movie, error) {
	return s.repo.GetMovieByID(ctx, id)
}

// ListMovies serves the full listing from a short-lived cache; any mutation
// invalidates it.
func (s *MovieServiceImpl) ListMovies(ctx context.Context) ([]types.Movie, error) {
	if cached, found := s.cache.Get(listCacheKey); found {
		if movies, ok := cached.([]types.Movie); ok {
			return movies, nil
		}
	}

	movies, err := s.repo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listCacheKey, movies, cache.DefaultExpiration)
	return movies, nil
}

func (s *MovieServiceImpl) UpdateMovie(ctx context.Context, id uuid.UUID, params types.UpdateMovieParams) (*types.Movie, error) {
	if params.Name != nil && *params.Name == "" {
		return nil, fmt.Errorf("movie name must not be empty: %w", types.ErrValidation)
	}

	m, err := s.repo.UpdateMovie(ctx, id, params)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(listCacheKey)
	return m, nil
}

func (s *MovieServiceImpl) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMovie(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(listCacheKey)
	return nil
}
