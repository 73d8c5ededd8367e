// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/ratelimit"
	"github.com/MKhiriev/items-keeper/internal/utils"
)

// Stage is one cross-cutting step of request processing.
type Stage interface {
	Name() string
	Intercept(next http.Handler) http.Handler
}

// RateLimiter admits or rejects requests per client identity.
type RateLimiter interface {
	Admit(clientID string) ratelimit.Decision
}

// Pipeline is an ordered list of stages. The first stage is the outermost.
type Pipeline struct {
	stages []Stage
}

// NewRequestPipeline builds the fixed request pipeline:
//
//	request context -> error normalizer -> logging -> rate limit -> CORS
func NewRequestPipeline(cfg config.Server, limiter RateLimiter, log *logger.Logger) *Pipeline {
	return &Pipeline{
		stages: []Stage{
			newRequestContextStage(log, utils.NewTraceIDGenerator(), cfg.RequestTimeout),
			newErrorNormalizerStage(),
			newLoggingStage(),
			newRateLimitStage(limiter),
			newCORSStage(cfg.CORSOrigins),
		},
	}
}

// Names returns the stage names, outermost first.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name())
	}
	return names
}

// Then wraps h with every stage of the pipeline.
func (p *Pipeline) Then(h http.Handler) http.Handler {
	for i := len(p.stages) - 1; i >= 0; i-- {
		h = p.stages[i].Intercept(h)
	}
	return h
}
