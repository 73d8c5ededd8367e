// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/handler"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/ratelimit"
	"github.com/MKhiriev/items-keeper/internal/server"
	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/internal/workers"
	"github.com/MKhiriev/items-keeper/models"
)

const role = "items-keeper-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(role, false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.Debug)
	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	backgroundWorkers := workers.NewWorkers(log,
		workers.NewRateLimitJanitor(limiter, cfg.Workers.RateLimitCleanupInterval, log),
	)

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, backgroundWorkers)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Bool("debug", cfg.App.Debug).
		Str("database", string(db.Dialect())).
		Str("address", cfg.Server.HTTPAddress).
		Int("rate_limit_requests", cfg.RateLimit.Requests).
		Dur("rate_limit_window", cfg.RateLimit.Window).
		Strs("cors_origins", cfg.Server.CORSOrigins).
		Msg("starting server")

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
}
