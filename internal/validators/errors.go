// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not a valid email address")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrEmptyTitle      = errors.New("title is required")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidPrice    = errors.New("price must be a finite number")
	ErrLimitTooLarge   = errors.New("limit must not exceed 1000")
	ErrLimitZero       = errors.New("limit must be positive")
	ErrSkipTooLarge    = errors.New("skip must not exceed 9223372036854775807")
)
