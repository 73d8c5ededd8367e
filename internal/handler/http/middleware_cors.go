// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// corsStage applies the configured origin allow-list and answers preflight
// requests itself. Credentials are allowed only for an explicit origin list.
type corsStage struct {
	handler func(http.Handler) http.Handler
}

func newCORSStage(origins []string) *corsStage {
	return &corsStage{
		handler: cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{traceIDHeader, rateLimitLimitHeader, rateLimitRemainingHeader},
			AllowCredentials: len(origins) > 0 && !slices.Contains(origins, "*"),
			MaxAge:           600,
		}),
	}
}

func (s *corsStage) Name() string {
	return "cors"
}

func (s *corsStage) Intercept(next http.Handler) http.Handler {
	return s.handler(next)
}
