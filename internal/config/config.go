// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// items-keeper server. It aggregates all sub-configurations and is populated
// by merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds descriptive application settings shown by the service banner.
	App App `envPrefix:"APP_"`

	// Auth holds token signing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and CORS settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the per-client request quota.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the environment and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the path of the dotenv file loaded before the
	// environment is parsed. A missing file is not an error.
	// Env: ENV_FILE
	EnvFilePath string `env:"ENV_FILE" envDefault:".env"`
}

// App holds application-level descriptive settings.
type App struct {
	// Name is the human-readable service name used in the banner.
	// Env: APP_NAME
	Name string `env:"NAME" envDefault:"Items Keeper"`

	// Environment names the deployment (e.g. "development", "production").
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Debug switches the logger to debug level.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"1.0.0"`
}

// Auth holds access token parameters.
type Auth struct {
	// SecretKey is the process-wide secret used to sign and verify access
	// tokens. Must be kept confidential.
	// Env: AUTH_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Algorithm is the JWT signing algorithm identifier (HS256, HS384, HS512).
	// Env: AUTH_ALGORITHM
	Algorithm string `env:"ALGORITHM" envDefault:"HS256"`

	// AccessTokenExpireMinutes is the access token TTL in minutes.
	// Env: AUTH_ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	// TokenIssuer is the optional "iss" claim. When set, tokens from other
	// issuers are rejected.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: AUTH_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST" envDefault:"10"`
}

// TokenTTL returns the access token lifetime as a duration.
func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// URL selects and configures the backend: "postgres://..." or
	// "postgresql://..." open PostgreSQL through pgx, "sqlite://path",
	// "file:path" or ":memory:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URL
	URL string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8000"`

	// RequestTimeout bounds the context of every inbound request.
	// Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins is the allow-list of origins for cross-origin requests.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// RateLimit holds the per-client sliding window quota.
type RateLimit struct {
	// Requests is the number of requests a single client may make within
	// Window.
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS" envDefault:"60"`

	// Window is the trailing window length (e.g. "60s", "1m").
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" envDefault:"60s"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RateLimitCleanupInterval controls how often idle client windows are
	// evicted from the rate limiter.
	// Env: WORKERS_RATE_LIMIT_CLEANUP_INTERVAL
	RateLimitCleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. .env file (ENV_FILE, default ".env")
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
