// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository and delegates token
// handling to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	tokenService TokenService
	hasher       PasswordHasher

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// dummyHash is verified against when the username is unknown, so both
	// failure paths pay for one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string

	logger *logger.Logger
}

// dummyPassword seeds dummyHash; it never matches a stored user.
const dummyPassword = "items-keeper-unknown-user"

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, hasher PasswordHasher, tokenTTL time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hasher:         hasher,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// Login authenticates a user by username and password and issues an access
// token whose subject is the username.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, username, password string) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("username", username).Msg("login attempt for unknown user")
			a.verifyDummy(password)
			return models.TokenResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.TokenResponse{}, storeFailure(err)
	}

	if err = a.hasher.Verify(user.PasswordHash, password); err != nil {
		log.Info().Err(err).Int64("user_id", user.ID).Msg("login attempt with wrong password")
		return models.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(user.Username, a.tokenTTL)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("token issuing failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// verifyDummy runs a password comparison that always fails. The hash is
// computed once with the configured hasher so its cost matches real users.
func (a *authService) verifyDummy(password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Str("func", "*authService.verifyDummy").Msg("dummy hash creation failed")
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == "" {
		return
	}
	_ = a.hasher.Verify(a.dummyHash, password)
}

// ResolveCurrentUser validates token and loads the user named by its subject.
//
// Token failures are returned as is; a subject without a user yields
// ErrInvalidCredentials. Store failures are not reported as auth failures.
func (a *authService) ResolveCurrentUser(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	subject, err := a.tokenService.Validate(token)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.User{}, err
	}

	user, err := a.userRepository.GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("subject", subject).Msg("token subject does not resolve to a user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.ResolveCurrentUser").Msg("user search by subject failed")
		return models.User{}, storeFailure(err)
	}

	return user, nil
}
