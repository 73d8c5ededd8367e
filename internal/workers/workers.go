// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  log,
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The first worker error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		g.Go(func() error {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed")
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
