package user

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanishkPamecha/Movies/internal/types"
)

var userCols = []string{"id", "username", "email", "password_hash", "is_admin", "created_at", "updated_at"}

func userRow(mockPool pgxmock.PgxPoolIface, u *types.User) *pgxmock.Rows {
	return mockPool.NewRows(userCols).
		AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
}

func TestPostgresUserRepo_UpdateUser(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresUserRepo(mockPool, slog.Default())
	id := uuid.New()

	t.Run("PartialUpdateKeepsNilFields", func(t *testing.T) {
		want := &types.User{
			ID:        id,
			Username:  "new-name",
			Email:     "a@x.com",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		mockPool.ExpectQuery("UPDATE users").
			WithArgs(id, strPtr("new-name"), (*string)(nil), (*string)(nil)).
			WillReturnRows(userRow(mockPool, want))

		got, err := repo.UpdateUser(context.Background(), id, strPtr("new-name"), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "new-name", got.Username)
		assert.Equal(t, "a@x.com", got.Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockPool.ExpectQuery("UPDATE users").
			WithArgs(id, (*string)(nil), strPtr("taken@x.com"), (*string)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.UpdateUser(context.Background(), id, nil, strPtr("taken@x.com"), nil)

		assert.ErrorIs(t, err, types.ErrConflict)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectQuery("UPDATE users").
			WithArgs(id, strPtr("x"), (*string)(nil), (*string)(nil)).
			WillReturnRows(mockPool.NewRows(userCols))

		_, err := repo.UpdateUser(context.Background(), id, strPtr("x"), nil, nil)

		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestPostgresUserRepo_ListUsers(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresUserRepo(mockPool, slog.Default())

	mockPool.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at").
		WillReturnRows(mockPool.NewRows(userCols).
			AddRow(uuid.New(), "ann", "a@x.com", "$2a$10$h", true, time.Now(), time.Now()).
			AddRow(uuid.New(), "bob", "b@x.com", "$2a$10$h", false, time.Now(), time.Now()))

	got, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsAdmin)
	assert.Equal(t, "bob", got[1].Username)
}
