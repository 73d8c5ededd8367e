// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/mock"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/models"
)

type authDeps struct {
	repo   *mock.MockUserRepository
	tokens *mock.MockTokenService
	hasher *mock.MockPasswordHasher
	svc    AuthService
}

func newAuthDeps(t *testing.T) authDeps {
	ctrl := gomock.NewController(t)
	d := authDeps{
		repo:   mock.NewMockUserRepository(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
	}
	d.svc = NewAuthService(d.repo, d.tokens, d.hasher, 30*time.Minute, logger.Nop())
	return d
}

var alice = models.User{ID: 1, Email: "alice@example.com", Username: "alice", PasswordHash: "$2a$hash"}

func TestAuthService_Login_Success(t *testing.T) {
	d := newAuthDeps(t)
	ctx := context.Background()

	d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	d.hasher.EXPECT().Verify(alice.PasswordHash, "secret").Return(nil)
	d.tokens.EXPECT().Issue("alice", 30*time.Minute).Return(models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
		SignedString:     "signed.jwt.value",
	}, nil)

	resp, err := d.svc.Login(ctx, "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, models.TokenResponse{AccessToken: "signed.jwt.value", TokenType: "bearer"}, resp)
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		d := newAuthDeps(t)
		d.repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
		d.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$dummy", nil)
		d.hasher.EXPECT().Verify("$2a$dummy", "secret").Return(errors.New("mismatch"))

		_, err := d.svc.Login(context.Background(), "ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newAuthDeps(t)
		d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(alice, nil)
		d.hasher.EXPECT().Verify(alice.PasswordHash, "nope").Return(errors.New("mismatch"))

		_, err := d.svc.Login(context.Background(), "alice", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	})
}

func TestAuthService_Login_UnknownUserStillVerifiesPassword(t *testing.T) {
	d := newAuthDeps(t)
	ctx := context.Background()

	d.repo.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound).Times(3)
	// hashed once, verified on every attempt
	d.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$dummy", nil).Times(1)
	d.hasher.EXPECT().Verify("$2a$dummy", gomock.Any()).Return(errors.New("mismatch")).Times(3)

	for _, name := range []string{"ghost", "nobody", "ghost"} {
		_, err := d.svc.Login(ctx, name, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownUserWithBrokenHasher(t *testing.T) {
	d := newAuthDeps(t)

	d.repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	d.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("cost out of range"))

	_, err := d.svc.Login(context.Background(), "ghost", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	d := newAuthDeps(t)
	d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)

	_, err := d.svc.Login(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	d := newAuthDeps(t)
	d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	d.hasher.EXPECT().Verify(alice.PasswordHash, "secret").Return(nil)
	d.tokens.EXPECT().Issue("alice", 30*time.Minute).Return(models.Token{}, assert.AnError)

	_, err := d.svc.Login(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ResolveCurrentUser(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.EXPECT().Validate("tok").Return("alice", nil)
		d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(alice, nil)

		user, err := d.svc.ResolveCurrentUser(context.Background(), "tok")
		require.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("expired token", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.EXPECT().Validate("tok").Return("", ErrTokenExpired)

		_, err := d.svc.ResolveCurrentUser(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("subject without user", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.EXPECT().Validate("tok").Return("deleted", nil)
		d.repo.EXPECT().GetUserByUsername(gomock.Any(), "deleted").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := d.svc.ResolveCurrentUser(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		d := newAuthDeps(t)
		d.tokens.EXPECT().Validate("tok").Return("alice", nil)
		d.repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrScanningRow)

		_, err := d.svc.ResolveCurrentUser(context.Background(), "tok")
		assert.ErrorIs(t, err, ErrStoreFailure)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
