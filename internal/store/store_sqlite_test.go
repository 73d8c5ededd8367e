// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/models"
)

func itemFixture() models.Item {
	desc := "ballpoint"
	return models.Item{Title: "pen", Description: &desc, Price: 1.25}
}

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{URL: "sqlite://"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func TestSQLite_UserRoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$2a$04$hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := s.UserRepository.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "alice", byEmail.Username)
	assert.Equal(t, "$2a$04$hash", byEmail.PasswordHash)
	assert.WithinDuration(t, created.CreatedAt, byEmail.CreatedAt, 0)

	byName, err := s.UserRepository.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.UserRepository.GetUserByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_DuplicateUser(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.io", Username: "a", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "a@x.io", Username: "b", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "b@x.io", Username: "a", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	users, err := s.UserRepository.ListUsers(ctx, models.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSQLite_ItemLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.ItemRepository.CreateItem(ctx, itemFixture())
	require.NoError(t, err)

	got, err := s.ItemRepository.GetItem(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "ballpoint", *got.Description)
	assert.Equal(t, 1.25, got.Price)

	updated, err := s.ItemRepository.UpdateItem(ctx, models.Item{ID: created.ID, Title: "pencil", Price: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "pencil", updated.Title)
	assert.Nil(t, updated.Description)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = s.ItemRepository.CreateItem(ctx, models.Item{Title: "ruler", Price: 3})
	require.NoError(t, err)

	page, err := s.ItemRepository.ListItems(ctx, models.Pagination{Skip: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "ruler", page[0].Title)

	require.NoError(t, s.ItemRepository.DeleteItem(ctx, created.ID))
	assert.ErrorIs(t, s.ItemRepository.DeleteItem(ctx, created.ID), ErrItemNotFound)

	_, err = s.ItemRepository.GetItem(ctx, created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.ItemRepository.UpdateItem(ctx, models.Item{ID: created.ID, Title: "gone"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
