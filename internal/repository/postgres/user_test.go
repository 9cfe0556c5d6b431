package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bengkel-backend/internal/repository"
	"bengkel-backend/internal/repository/postgres"
)

const userCols = "id, email, full_name, role, password_hash, approved_on, created_on, updated_on"

func userRow(id int32, email string, approved *time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "full_name", "role", "password_hash", "approved_on", "created_on", "updated_on"}).
		AddRow(id, email, "Budi", "STUDENT", "hash", approved, now, now)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT " + userCols + " FROM users WHERE email").
			WithArgs("budi@x.io").
			WillReturnRows(userRow(3, "budi@x.io", nil))

		user, err := repo.GetByEmail(ctx, "budi@x.io")
		require.NoError(t, err)
		assert.Equal(t, int32(3), user.ID)
		assert.False(t, user.Approved())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT " + userCols + " FROM users WHERE email").
			WithArgs("ghost@x.io").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(ctx, "ghost@x.io")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestUserRepositoryApprove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users SET approved_on = COALESCE\(approved_on, \$2\)`).
		WithArgs(int32(3), sqlmock.AnyArg()).
		WillReturnRows(userRow(3, "budi@x.io", &now))

	user, err := repo.Approve(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, user.Approved())
	assert.NoError(t, mock.ExpectationsWereMet())
}
