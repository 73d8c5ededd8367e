// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	pipeline  *Pipeline
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter RateLimiter, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		pipeline:  NewRequestPipeline(cfg, limiter, logger),
		validator: validators.NewInputValidator(),
		logger:    logger,
	}
	logger.Info().Strs("pipeline", h.pipeline.Names()).Msg("http handler created")
	return h
}

// handlerFunc is a route handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc]; a returned error is raised to the
// error normalizer.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			raise(w, r, err)
		}
	}
}
