// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is reported when a protected route is
	// called without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is reported when the header does not use
	// the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is reported for "Bearer " with nothing after the scheme.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrRateLimited is reported by the rate limit stage when the caller has
	// used up its quota.
	ErrRateLimited = errors.New("rate limit exceeded")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	ErrInvalidID         = errors.New("id must be a positive integer")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
	ErrInvalidForm       = errors.New("invalid form body")

	errNoUserInContext = errors.New("no authenticated user in request context")
)

// AuthError is an authentication failure with the detail shown to the caller.
// The wrapped error is only logged.
type AuthError struct {
	Detail string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Detail
	}
	return e.Detail + ": " + e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
