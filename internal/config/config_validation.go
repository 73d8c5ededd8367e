// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"slices"
)

// supportedAlgorithms lists the JWT signing algorithms accepted for
// [Auth.Algorithm]. Only the HMAC family is supported because tokens are
// signed with a shared secret.
var supportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// bcrypt.MinCost and bcrypt.MaxCost
const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated group contributes its own sentinel; the result is an
// [errors.Join] of all of them, or nil if the configuration is valid.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Auth.SecretKey == "" ||
		!slices.Contains(supportedAlgorithms, cfg.Auth.Algorithm) ||
		cfg.Auth.AccessTokenExpireMinutes <= 0 ||
		cfg.Auth.PasswordHashCost < minPasswordHashCost ||
		cfg.Auth.PasswordHashCost > maxPasswordHashCost {
		err = errors.Join(err, ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.URL == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		err = errors.Join(err, ErrInvalidRateLimitConfigs)
	}

	if cfg.Workers.RateLimitCleanupInterval <= 0 {
		err = errors.Join(err, ErrInvalidWorkerConfigs)
	}

	return err
}
