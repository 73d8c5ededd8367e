// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/items-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// Returns ErrEmailAlreadyExists or ErrUsernameAlreadyExists on a
	// uniqueness conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUserByID returns ErrNoUserWasFound when no user has the given id.
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	// GetUserByEmail returns ErrNoUserWasFound when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// GetUserByUsername returns ErrNoUserWasFound when no user has the given username.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	// ListUsers returns users ordered by id within the pagination window.
	ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error)
}

// ItemRepository persists catalogue items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error)
	// UpdateItem overwrites title, description and price of the item with
	// item.ID. Returns ErrItemNotFound when it does not exist.
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
