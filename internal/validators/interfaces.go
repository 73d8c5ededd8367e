// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store:
// registration and login forms, item input and list pagination.
//
// Returned errors carry messages meant to be shown to API callers verbatim.
package validators

import "context"

// Validator validates a payload, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
