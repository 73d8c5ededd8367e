// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID and CreatedAt.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other unique violation → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = time.Now().UTC()

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	id, err := r.db.insertReturningID(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if column, ok := uniqueViolation(err); ok {
			switch column {
			case "email":
				return models.User{}, ErrEmailAlreadyExists
			case "username":
				return models.User{}, ErrUsernameAlreadyExists
			default:
				return models.User{}, ErrUserAlreadyExists
			}
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ID = id
	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id}, "*userRepository.GetUserByID")
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email}, "*userRepository.GetUserByEmail")
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username}, "*userRepository.GetUserByUsername")
}

// ListUsers returns at most page.Limit users after skipping page.Skip,
// ordered by id. An empty page yields an empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListUsersQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, err
	}

	var users []models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0, page.Limit)
		for rows.Next() {
			var user models.User
			if err = rows.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, user)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Uint64("skip", page.Skip).
			Uint64("limit", page.Limit).
			Msg("failed to list users")
		return nil, err
	}

	return users, nil
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		scanErr := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrNoUserWasFound
		case scanErr != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", funcName).Msg("failed to get user")
		}
		return models.User{}, err
	}

	return user, nil
}
