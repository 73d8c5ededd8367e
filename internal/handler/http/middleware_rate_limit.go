// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
)

const (
	rateLimitLimitHeader     = "X-Rate-Limit-Limit"
	rateLimitRemainingHeader = "X-Rate-Limit-Remaining"
	retryAfterHeader         = "Retry-After"
)

// rateLimitStage admits requests per client IP. Rejected requests never
// reach the handler.
type rateLimitStage struct {
	limiter RateLimiter
}

func newRateLimitStage(limiter RateLimiter) *rateLimitStage {
	return &rateLimitStage{limiter: limiter}
}

func (s *rateLimitStage) Name() string {
	return "rate-limit"
}

func (s *rateLimitStage) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := s.limiter.Admit(clientIP(r))

		w.Header().Set(rateLimitLimitHeader, strconv.Itoa(decision.Limit))
		w.Header().Set(rateLimitRemainingHeader, strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			w.Header().Set(retryAfterHeader, strconv.Itoa(max(seconds, 1)))
			raise(w, r, ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP is the host part of the peer address. Forwarding headers are not
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
