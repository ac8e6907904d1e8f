package movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kanishkPamecha/Movies/internal/api"
	"github.com/kanishkPamecha/Movies/internal/types"
)

var _ MovieRepo = (*PostgresMovieRepo)(nil)

type MovieRepo interface {
	CreateMovie(ctx context.Context, params types.CreateMovieParams) (*types.Movie, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*types.Movie, error)
	ListMovies(ctx context.Context) ([]types.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, params types.UpdateMovieParams) (*types.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type PostgresMovieRepo struct {
	logger *slog.Logger
	db     api.DB
}

func NewPostgresMovieRepo(db api.DB, logger *slog.Logger) *PostgresMovieRepo {
	return &PostgresMovieRepo{
		logger: logger,
		db:     db,
	}
}

const foreignKeyViolation = "23503"

const movieColumns = `id, name, image, year, detail, "cast", genre_id, created_at, updated_at`

func scanMovie(row pgx.Row, m *types.Movie) error {
	return row.Scan(&m.ID, &m.Name, &m.Image, &m.Year, &m.Detail, &m.Cast,
		&m.GenreID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *PostgresMovieRepo) CreateMovie(ctx context.Context, params types.CreateMovieParams) (*types.Movie, error) {
	cast := params.Cast
	if cast == nil {
		cast = []string{}
	}

	var m types.Movie
	err := scanMovie(r.db.QueryRow(ctx,
		`INSERT INTO movies (name, image, year, detail, "cast", genre_id)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING `+movieColumns,
		params.Name, params.Image, params.Year, params.Detail, cast, params.GenreID), &m)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("genre does not exist: %w", types.ErrValidation)
		}
		return nil, fmt.Errorf("create movie: db insert failed: %w", err)
	}
	return &m, nil
}

func (r *PostgresMovieRepo) GetMovieByID(ctx context.Context, id uuid.UUID) (*types.Movie, error) {
	var m types.Movie
	err := scanMovie(r.db.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("movie not found: %w", types.ErrNotFound)
		}
		return nil, fmt.Errorf("get movie: query failed: %w", err)
	}
	return &m, nil
}

func (r *PostgresMovieRepo) ListMovies(ctx context.Context) ([]types.Movie, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list movies: query failed: %w", err)
	}
	defer rows.Close()

	var movies []types.Movie
	for rows.Next() {
		var m types.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, fmt.Errorf("list movies: scan failed: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: rows iteration failed: %w", err)
	}
	return movies, nil
}

func (r *PostgresMovieRepo) UpdateMovie(ctx context.Context, id uuid.UUID, params types.UpdateMovieParams) (*types.Movie, error) {
	var cast []string
	if params.Cast != nil {
		cast = *params.Cast
	}

	var m types.Movie
	err := scanMovie(r.db.QueryRow(ctx,
		`UPDATE movies
         SET name       = COALESCE($2, name),
             image      = COALESCE($3, image),
             year       = COALESCE($4, year),
             detail     = COALESCE($5, detail),
             "cast"     = CASE WHEN $6::text[] IS NULL THEN "cast" ELSE $6 END,
             genre_id   = COALESCE($7, genre_id),
             updated_at = now()
         WHERE id = $1
         RETURNING `+movieColumns,
		id, params.Name, params.Image, params.Year, params.Detail, cast, params.GenreID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("movie not found: %w", types.ErrNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("genre does not exist: %w", types.ErrValidation)
		}
		return nil, fmt.Errorf("update movie: db update failed: %w", err)
	}
	return &m, nil
}

func (r *PostgresMovieRepo) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: db delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movie not found: %w", types.ErrNotFound)
	}
	return nil
}
