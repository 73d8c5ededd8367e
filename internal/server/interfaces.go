// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the process.
type Server interface {
	// Run serves until ctx is cancelled or a stop signal arrives, then
	// shuts down gracefully. It returns the first fatal error, if any.
	Run(ctx context.Context) error
}

// Runner is a background component that stops when its context is done.
type Runner interface {
	Run(ctx context.Context) error
}
