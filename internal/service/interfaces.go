// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic behind the HTTP handlers:
// token issuance and validation, login and caller resolution, user
// registration and lookup, and item management.
//
// Services return sentinel or typed errors from errors.go; the HTTP layer
// translates them into status codes in one place.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/items-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// Issue returns a token for subject that expires ttl from now.
	Issue(subject string, ttl time.Duration) (models.Token, error)
	// Validate returns the subject of a valid token or one of
	// ErrTokenInvalidSignature, ErrTokenExpired, ErrTokenMalformed.
	Validate(token string) (string, error)
}

// AuthService implements the password grant and per-request caller resolution.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)
	ResolveCurrentUser(ctx context.Context, token string) (models.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, input models.ItemInput) (models.Item, error)
	ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, input models.ItemInput) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// AppInfoService describes the running service for the banner and
// health endpoints.
type AppInfoService interface {
	Info(ctx context.Context) models.AppInfo
	Health(ctx context.Context) models.HealthStatus
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
