// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// The password hash is never exposed outside the server process.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Username is the login name used on the token endpoint and as the
	// subject of issued tokens.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It MUST never be serialized in API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate is the registration payload accepted by POST /users/.
type UserCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries the OAuth2 password-grant form fields of
// POST /auth/token.
type LoginRequest struct {
	Username string
	Password string
}
