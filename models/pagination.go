// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

const (
	// DefaultPageLimit is used when a list request carries no "limit".
	DefaultPageLimit uint64 = 100
	// MaxPageLimit caps the "limit" a caller may request.
	MaxPageLimit uint64 = 1000
	// MaxPageSkip is the largest offset SQL backends accept (a signed 64-bit value).
	MaxPageSkip uint64 = math.MaxInt64
)

// Pagination describes the skip/limit window of a list request.
type Pagination struct {
	// Skip is the number of records to skip.
	Skip uint64
	// Limit is the maximum number of records to return.
	Limit uint64
}

// DefaultPagination returns the window used when no query parameters are given.
func DefaultPagination() Pagination {
	return Pagination{Skip: 0, Limit: DefaultPageLimit}
}
