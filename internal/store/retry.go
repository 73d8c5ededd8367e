// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

type retryPolicy struct {
	base       time.Duration
	maxRetries uint64
}

var defaultRetryPolicy = retryPolicy{
	base:       50 * time.Millisecond,
	maxRetries: 3,
}

// withRetry runs fn and repeats it with exponential backoff while the
// classifier reports its error as retryable.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.retryPolicy.maxRetries, retry.NewExponential(db.retryPolicy.base))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
