// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorResponse is the normalized error envelope written for every failed
// request.
type ErrorResponse struct {
	// Error is a short, stable, human-readable error title
	// (e.g. "Validation error", "Database error").
	Error string `json:"error"`

	// Detail is an optional explanation. It is never populated with internal
	// details for server-side failures.
	Detail string `json:"detail,omitempty"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// AppInfo is the service banner returned by GET /.
type AppInfo struct {
	Message     string   `json:"message"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Features    []string `json:"features"`
}

// HealthStatus is the liveness payload returned by GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
