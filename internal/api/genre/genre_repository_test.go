package genre

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

func TestPostgresGenreRepo_CreateGenre(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresGenreRepo(mockPool, slog.Default())

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockPool.ExpectQuery("INSERT INTO genres").
			WithArgs("Horror").
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "created_at", "updated_at"}).
				AddRow(id, "Horror", time.Now(), time.Now()))

		got, err := repo.CreateGenre(context.Background(), "Horror")

		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Horror", got.Name)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mockPool.ExpectQuery("INSERT INTO genres").
			WithArgs("Horror").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "genres_name_key"})

		_, err := repo.CreateGenre(context.Background(), "Horror")

		assert.ErrorIs(t, err, types.ErrConflict)
	})
}

func TestPostgresGenreRepo_ListGenres(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresGenreRepo(mockPool, slog.Default())

	mockPool.ExpectQuery("SELECT (.+) FROM genres ORDER BY name").
		WillReturnRows(mockPool.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(uuid.New(), "Comedy", time.Now(), time.Now()).
			AddRow(uuid.New(), "Horror", time.Now(), time.Now()))

	got, err := repo.ListGenres(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Comedy", got[0].Name)
	assert.Equal(t, "Horror", got[1].Name)
}

func TestPostgresGenreRepo_DeleteGenre(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewPostgresGenreRepo(mockPool, slog.Default())
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM genres").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteGenre(context.Background(), id))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectExec("DELETE FROM genres").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteGenre(context.Background(), id)

		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
