package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// newMockAccountRepository creates a GormAccountRepository with a mocked SQL connection
func newMockAccountRepository(t *testing.T) (*GormAccountRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormAccountRepository(gormDB), mock, mockDB
}

func TestGormAccountRepository_FindByUsername(t *testing.T) {
	t.Run("finds existing account", func(t *testing.T) {
		repo, mock, mockDB := newMockAccountRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "username", "email", "password_hash", "role"}).
			AddRow(int64(1), now, now, "alice", "alice@example.com", "$2a$12$hash", "user")

		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("alice", 1).
			WillReturnRows(rows)

		account, err := repo.FindByUsername(context.Background(), "alice")

		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "alice", account.Username)
		assert.Equal(t, identity.RoleUser, account.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to NotFound", func(t *testing.T) {
		repo, mock, mockDB := newMockAccountRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("nobody", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		account, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Nil(t, account)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountRepository_ExistsByUsername(t *testing.T) {
	repo, mock, mockDB := newMockAccountRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormAccountRepository_SQLite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormAccountRepository(db)
	ctx := context.Background()

	account, err := identity.NewAccount("alice", "alice@example.com", "s3cret-pass", identity.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, account))

	t.Run("round-trips the password hash", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, found.VerifyPassword("s3cret-pass"))
		assert.False(t, found.VerifyPassword("wrong"))
	})

	t.Run("delete removes the account", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, account.ID))
		assert.Equal(t, shared.ErrNotFound, repo.Delete(ctx, account.ID))

		_, err := repo.FindByID(ctx, account.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}
