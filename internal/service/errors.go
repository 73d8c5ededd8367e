// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for every failed login and for tokens
	// whose subject no longer exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
	ErrEmptySecretKey       = errors.New("token secret key is empty")
	ErrInvalidTokenTTL      = errors.New("token ttl must be positive")

	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrStoreFailure marks errors raised by the persistence layer that are
	// not part of the domain contract.
	ErrStoreFailure = errors.New("store failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries a message that may be shown to the caller as is.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing resource by kind and id.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// AlreadyExistsError reports a registration conflict on a unique user field.
// It matches ErrUserAlreadyExists.
type AlreadyExistsError struct {
	Field string
	Value string
}

func (e *AlreadyExistsError) Error() string {
	if e.Field == "" {
		return "User already exists"
	}
	return fmt.Sprintf("User with %s %s already exists", e.Field, e.Value)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrUserAlreadyExists
}

func storeFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
