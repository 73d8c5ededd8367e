// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/items-keeper/internal/logger"
)

// RateLimitJanitor periodically evicts idle client windows from the rate
// limiter so that its map does not grow with every client ever seen.
type RateLimitJanitor struct {
	pruner   WindowPruner
	interval time.Duration
	logger   *logger.Logger
}

func NewRateLimitJanitor(pruner WindowPruner, interval time.Duration, log *logger.Logger) *RateLimitJanitor {
	return &RateLimitJanitor{
		pruner:   pruner,
		interval: interval,
		logger:   log,
	}
}

func (j *RateLimitJanitor) Name() string {
	return "rate-limit-janitor"
}

func (j *RateLimitJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := j.pruner.Prune(); evicted > 0 {
				j.logger.Debug().Int("evicted", evicted).Msg("pruned idle rate-limit windows")
			}
		}
	}
}
