// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// requestContextStage tags every request with a trace id, stores a
// request-scoped logger in its context and applies the request timeout.
type requestContextStage struct {
	logger   *logger.Logger
	traceIDs *utils.TraceIDGenerator
	timeout  time.Duration
}

func newRequestContextStage(log *logger.Logger, traceIDs *utils.TraceIDGenerator, timeout time.Duration) *requestContextStage {
	return &requestContextStage{
		logger:   log,
		traceIDs: traceIDs,
		timeout:  timeout,
	}
}

func (s *requestContextStage) Name() string {
	return "request-context"
}

func (s *requestContextStage) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = s.traceIDs.Generate()
		}

		ctx := s.logger.WithStr("trace_id", traceID).WithContext(r.Context())
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
