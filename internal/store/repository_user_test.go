// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/models"
)

var userRowColumns = []string{"id", "email", "username", "password_hash", "created_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, DialectPostgres, logger.Nop())
	db.retryPolicy = retryPolicy{base: time.Millisecond, maxRetries: 2}
	return db, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Email: "john@example.com", Username: "john", PasswordHash: "hash"}

	mock.ExpectQuery(`INSERT INTO users \(email,username,password_hash,created_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(user.Email, user.Username, user.PasswordHash, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, user.Email, created.Email)
	assert.Equal(t, user.Username, created.Username)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"},
			want: ErrEmailAlreadyExists,
		},
		{
			name: "username",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			want: ErrUsernameAlreadyExists,
		},
		{
			name: "unknown constraint",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_pkey"},
			want: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, email, username, password_hash, created_at FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "john@example.com", "john", "hash", now))

	found, err := repo.GetUserByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Email: "john@example.com", Username: "john", PasswordHash: "hash", CreatedAt: now}, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestGetUserByID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
}

func TestGetUserByID_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "a@b.c", "a", "h", time.Now()))

	found, err := repo.GetUserByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for range 3 {
		mock.ExpectQuery(`FROM users WHERE id = \$1`).
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.GetUserByID(context.Background(), 3)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.ConnectionFailure, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.GetUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, email, username, password_hash, created_at FROM users ORDER BY id LIMIT 2 OFFSET 1`).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(2, "b@x.io", "b", "h2", now).
			AddRow(3, "c@x.io", "c", "h3", now))

	users, err := repo.ListUsers(context.Background(), models.Pagination{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b", users[0].Username)
	assert.Equal(t, "c", users[1].Username)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.ListUsers(context.Background(), models.DefaultPagination())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns).
		AddRow(1, "a@b.c", "a", "h", time.Now()).
		RowError(0, sql.ErrConnDone))

	_, err := repo.ListUsers(context.Background(), models.DefaultPagination())
	assert.ErrorIs(t, err, ErrScanningRows)
}
