// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/internal/validators"
	"github.com/MKhiriev/items-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser registers a new account. A taken email is reported before the
// password is hashed; a concurrent registration racing past that check is
// still caught by the store's uniqueness constraints.
func (s *userService) CreateUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		return models.User{}, &ValidationError{Err: err}
	}

	_, err := s.userRepository.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		log.Info().Str("email", in.Email).Msg("registration with an existing email")
		return models.User{}, &AlreadyExistsError{Field: "email", Value: in.Email}
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*userService.CreateUser").Msg("user search by email failed")
		return models.User{}, storeFailure(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, &AlreadyExistsError{Field: "email", Value: in.Email}
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, &AlreadyExistsError{Field: "username", Value: in.Username}
		case errors.Is(err, store.ErrUserAlreadyExists):
			return models.User{}, &AlreadyExistsError{}
		}
		log.Err(err).Str("func", "*userService.CreateUser").Msg("user creation ended with error")
		return models.User{}, storeFailure(err)
	}

	log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *userService) ListUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	if err := s.validator.Validate(ctx, page); err != nil {
		return nil, &ValidationError{Err: err}
	}

	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return nil, storeFailure(err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, &NotFoundError{Resource: "User", ID: id}
		}
		return models.User{}, storeFailure(err)
	}
	return user, nil
}
