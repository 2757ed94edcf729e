package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"unlinked/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	user := &models.User{
		Name:     "A",
		Username: "a1",
		Email:    "a@x.com",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "A", "a1", "a@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user, "secret1")

	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	// в хранилище уходит только хеш
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByID_ProjectionWithoutHash(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, name, username, email, created_at FROM users")).
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "username", "email", "created_at"}).
			AddRow("user-123", "A", "a1", "a@x.com", time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT connection_id FROM connections")).
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"connection_id"}).AddRow("friend-1"))

	user, err := repo.GetUserByID(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, "a1", user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, []string{"friend-1"}, user.Connections)
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, name, username, email, created_at FROM users")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "username", "email", "created_at"}))

	_, err := repo.GetUserByID(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"user_id", "name", "username", "email", "password_hash", "created_at"}).
			AddRow("user-123", "A", "a1", "a@x.com", string(hash), time.Now())
	}

	t.Run("верный пароль", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE username")).
			WithArgs("a1").
			WillReturnRows(userRows())

		user, err := repo.VerifyPassword(context.Background(), "a1", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.UserID)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE username")).
			WithArgs("a1").
			WillReturnRows(userRows())

		_, err := repo.VerifyPassword(context.Background(), "a1", "wrong")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("пользователь не существует", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE username")).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.VerifyPassword(context.Background(), "ghost", "secret1")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestUserRepository_AddConnection(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO connections")).
		WithArgs("user-1", "user-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.AddConnection(context.Background(), "user-1", "user-2")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
