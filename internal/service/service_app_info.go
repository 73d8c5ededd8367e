// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/models"
)

const healthStatusHealthy = "healthy"

var appFeatures = []string{
	"Authentication with JWT",
	"Request logging",
	"Rate limiting",
	"Error handling",
	"CORS support",
}

type appInfoService struct {
	appName     string
	appVersion  string
	environment string
	now         func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:     cfg.Name,
		appVersion:  cfg.Version,
		environment: cfg.Environment,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) Info(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Message:     fmt.Sprintf("Welcome to %s!", s.appName),
		Version:     s.appVersion,
		Environment: s.environment,
		Features:    append([]string(nil), appFeatures...),
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    healthStatusHealthy,
		Timestamp: s.now().UTC(),
	}
}
