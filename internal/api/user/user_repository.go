package user

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

var _ UserRepo = (*PostgresUserRepo)(nil)

type UserRepo interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	// UpdateUser applies a partial update; nil fields keep their prior
	// values. A duplicate email surfaces as types.ErrConflict via the
	// storage-layer unique constraint.
	UpdateUser(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*types.User, error)
}

type PostgresUserRepo struct {
	logger *slog.Logger
	db     api.DB
}

func NewPostgresUserRepo(db api.DB, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger: logger,
		db:     db,
	}
}

const uniqueViolation = "23505"

const userColumns = `id, username, email, password_hash, is_admin, created_at, updated_at`

func scanUser(row pgx.Row, user *types.User) error {
	return row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	var user types.User
	err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by id: query failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context) ([]types.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: query failed: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var user types.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("list users: scan failed: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: rows iteration failed: %w", err)
	}
	return users, nil
}

func (r *PostgresUserRepo) UpdateUser(ctx context.Context, id uuid.UUID, username, email, passwordHash *string) (*types.User, error) {
	var user types.User
	err := scanUser(r.db.QueryRow(ctx,
		`UPDATE users
         SET username      = COALESCE($2, username),
             email         = COALESCE($3, email),
             password_hash = COALESCE($4, password_hash),
             updated_at    = now()
         WHERE id = $1
         RETURNING `+userColumns,
		id, username, email, passwordHash), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("email already in use: %w", types.ErrConflict)
		}
		return nil, fmt.Errorf("update user: db update failed: %w", err)
	}
	return &user, nil
}
