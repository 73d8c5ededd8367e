// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/items-keeper/models"
)

func validUserCreate() models.UserCreate {
	return models.UserCreate{Email: "alice@example.com", Username: "alice", Password: "s3cret"}
}

func TestNewInputValidator(t *testing.T) {
	require.NotNil(t, NewInputValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	user := validUserCreate()
	item := models.ItemInput{Title: "pen", Price: 1}
	page := models.DefaultPagination()
	login := models.LoginRequest{Username: "alice", Password: "pw"}

	assert.NoError(t, v.Validate(ctx, user))
	assert.NoError(t, v.Validate(ctx, &user))
	assert.NoError(t, v.Validate(ctx, item))
	assert.NoError(t, v.Validate(ctx, &item))
	assert.NoError(t, v.Validate(ctx, page))
	assert.NoError(t, v.Validate(ctx, &page))
	assert.NoError(t, v.Validate(ctx, login))
	assert.NoError(t, v.Validate(ctx, &login))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, user, "nope"), ErrUnknownField)
}

func TestValidate_UserCreate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UserCreate)
		wantErr error
	}{
		{"valid", func(*models.UserCreate) {}, nil},
		{"empty email", func(u *models.UserCreate) { u.Email = "" }, ErrEmptyEmail},
		{"invalid email", func(u *models.UserCreate) { u.Email = "not-an-email" }, ErrInvalidEmail},
		{"display name email", func(u *models.UserCreate) { u.Email = "Alice <alice@example.com>" }, ErrInvalidEmail},
		{"empty username", func(u *models.UserCreate) { u.Username = "" }, ErrEmptyUsername},
		{"blank username", func(u *models.UserCreate) { u.Username = "   " }, ErrEmptyUsername},
		{"username with space", func(u *models.UserCreate) { u.Username = "al ice" }, nil},
		{"long username", func(u *models.UserCreate) { u.Username = strings.Repeat("a", 200) }, nil},
		{"username with symbols", func(u *models.UserCreate) { u.Username = "Ünïcode+name@home!" }, nil},
		{"empty password", func(u *models.UserCreate) { u.Password = "" }, ErrEmptyPassword},
		{"password too long", func(u *models.UserCreate) { u.Password = strings.Repeat("p", 73) }, ErrPasswordTooLong},
	}

	v := NewInputValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUserCreate()
			tt.mutate(&user)

			err := v.Validate(context.Background(), user)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_UserCreate_FieldScoping(t *testing.T) {
	v := NewInputValidator()
	user := models.UserCreate{Email: "bad", Username: "alice"}

	// only username is checked
	assert.NoError(t, v.Validate(context.Background(), user, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), user, FieldEmail), ErrInvalidEmail)
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "pw"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "  ", Password: "pw"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "alice"}), ErrEmptyPassword)
}

func TestValidate_ItemInput(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ItemInput{Title: " ", Price: 1}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.ItemInput{Title: "pen", Price: -0.01}), ErrNegativePrice)
	assert.ErrorIs(t, v.Validate(ctx, models.ItemInput{Title: "pen", Price: math.Inf(1)}), ErrInvalidPrice)
	assert.NoError(t, v.Validate(ctx, models.ItemInput{Title: "free pen", Price: 0}))
}

func TestValidate_Pagination(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Pagination{Skip: 5, Limit: 1000}))
	assert.ErrorIs(t, v.Validate(ctx, models.Pagination{Limit: 1001}), ErrLimitTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.Pagination{Limit: 0}), ErrLimitZero)

	assert.NoError(t, v.Validate(ctx, models.Pagination{Skip: math.MaxInt64, Limit: 10}))
	assert.ErrorIs(t, v.Validate(ctx, models.Pagination{Skip: math.MaxInt64 + 1, Limit: 10}), ErrSkipTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.Pagination{Skip: math.MaxUint64, Limit: 10}), ErrSkipTooLarge)
	assert.ErrorIs(t, v.Validate(ctx, models.Pagination{Skip: math.MaxUint64}, FieldSkip), ErrSkipTooLarge)
}
