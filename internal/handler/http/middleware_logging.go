// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/items-keeper/internal/logger"
)

type loggingStage struct{}

func newLoggingStage() *loggingStage {
	return &loggingStage{}
}

func (s *loggingStage) Name() string {
	return "logging"
}

// Intercept writes one access log line per request. A panicking handler is
// logged as a 500 and the panic continues to the error normalizer.
func (s *loggingStage) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()
		lw := newResponseWriter(w)

		defer func() {
			p := recover()

			status := lw.status
			switch {
			case p != nil:
				status = http.StatusInternalServerError
			case status == 0:
				status = http.StatusOK
			}

			log.Info().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("client_ip", clientIP(r)).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()

			if p != nil {
				panic(p)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}
