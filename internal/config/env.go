// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads variables from the dotenv file at path into the process
// environment. Variables that are already set are not overwritten.
//
// It reports whether the file was found. A missing file is not an error.
func loadDotEnv(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return true, nil
}

// dotEnvPath resolves the dotenv file location from ENV_FILE, falling back
// to ".env" in the working directory.
func dotEnvPath() (string, error) {
	var locator struct {
		Path string `env:"ENV_FILE" envDefault:".env"`
	}
	if err := env.Parse(&locator); err != nil {
		return "", fmt.Errorf("error resolving env file path: %w", err)
	}

	return locator.Path, nil
}
