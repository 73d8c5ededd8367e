// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// configuration file. Durations are accepted as strings ("30s") or numbers
// of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Name        string `json:"name"`
		Environment string `json:"environment"`
		Debug       bool   `json:"debug"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		SecretKey                string `json:"secret_key"`
		Algorithm                string `json:"algorithm"`
		AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
		TokenIssuer              string `json:"token_issuer"`
		PasswordHashCost         int    `json:"password_hash_cost"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			URL string `json:"database_url"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Requests int      `json:"requests"`
		Window   Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		RateLimitCleanupInterval Duration `json:"rate_limit_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:        jsonCfg.App.Name,
			Environment: jsonCfg.App.Environment,
			Debug:       jsonCfg.App.Debug,
			Version:     jsonCfg.App.Version,
		},
		Auth: Auth{
			SecretKey:                jsonCfg.Auth.SecretKey,
			Algorithm:                jsonCfg.Auth.Algorithm,
			AccessTokenExpireMinutes: jsonCfg.Auth.AccessTokenExpireMinutes,
			TokenIssuer:              jsonCfg.Auth.TokenIssuer,
			PasswordHashCost:         jsonCfg.Auth.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				URL: jsonCfg.Storage.DB.URL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		RateLimit: RateLimit{
			Requests: jsonCfg.RateLimit.Requests,
			Window:   time.Duration(jsonCfg.RateLimit.Window),
		},
		Workers: Workers{
			RateLimitCleanupInterval: time.Duration(jsonCfg.Workers.RateLimitCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
