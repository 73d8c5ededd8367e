// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/handler/http"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates a handler for every transport with a configured
// address.
func NewHandlers(services *service.Services, limiter http.RateLimiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
