// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/internal/utils"
	"github.com/MKhiriev/items-keeper/internal/validators"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	UserService    UserService
	ItemService    ItemService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := utils.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	validator := validators.NewInputValidator()

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.UserRepository, tokenService, hasher, cfg.Auth.TokenTTL(), logger),
		UserService:    NewUserService(storages.UserRepository, hasher, validator, logger),
		ItemService:    NewItemService(storages.ItemRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
