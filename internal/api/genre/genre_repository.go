package genre

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

var _ GenreRepo = (*PostgresGenreRepo)(nil)

type GenreRepo interface {
	CreateGenre(ctx context.Context, name string) (*types.Genre, error)
	GetGenreByID(ctx context.Context, id uuid.UUID) (*types.Genre, error)
	ListGenres(ctx context.Context) ([]types.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*types.Genre, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}

type PostgresGenreRepo struct {
	logger *slog.Logger
	db     api.DB
}

func NewPostgresGenreRepo(db api.DB, logger *slog.Logger) *PostgresGenreRepo {
	return &PostgresGenreRepo{
		logger: logger,
		db:     db,
	}
}

const uniqueViolation = "23505"

func (r *PostgresGenreRepo) CreateGenre(ctx context.Context, name string) (*types.Genre, error) {
	var g types.Genre
	err := r.db.QueryRow(ctx,
		`INSERT INTO genres (name) VALUES ($1)
         RETURNING id, name, created_at, updated_at`,
		name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("genre already exists: %w", types.ErrConflict)
		}
		return nil, fmt.Errorf("create genre: db insert failed: %w", err)
	}
	return &g, nil
}

func (r *PostgresGenreRepo) GetGenreByID(ctx context.Context, id uuid.UUID) (*types.Genre, error) {
	var g types.Genre
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM genres WHERE id = $1`,
		id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("genre not found: %w", types.ErrNotFound)
		}
		return nil, fmt.Errorf("get genre: query failed: %w", err)
	}
	return &g, nil
}

func (r *PostgresGenreRepo) ListGenres(ctx context.Context) ([]types.Genre, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list genres: query failed: %w", err)
	}
	defer rows.Close()

	var genres []types.Genre
	for rows.Next() {
		var g types.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list genres: scan failed: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list genres: rows iteration failed: %w", err)
	}
	return genres, nil
}

func (r *PostgresGenreRepo) UpdateGenre(ctx context.Context, id uuid.UUID, name string) (*types.Genre, error) {
	var g types.Genre
	err := r.db.QueryRow(ctx,
		`UPDATE genres SET name = $2, updated_at = now() WHERE id = $1
         RETURNING id, name, created_at, updated_at`,
		id, name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("genre not found: %w", types.ErrNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("genre already exists: %w", types.ErrConflict)
		}
		return nil, fmt.Errorf("update genre: db update failed: %w", err)
	}
	return &g, nil
}

func (r *PostgresGenreRepo) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete genre: db delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("genre not found: %w", types.ErrNotFound)
	}
	return nil
}
