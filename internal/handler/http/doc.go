// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// Every request passes through a fixed [Pipeline] of stages before it reaches
// the chi router: request context (trace id, request logger, timeout), error
// normalization, access logging, rate limiting and CORS. Handlers return
// errors instead of writing failure responses; the error normalizer is the
// only place where errors become status codes and JSON envelopes.
package http
