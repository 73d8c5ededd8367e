// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"net/mail"
	"strings"

	"github.com/MKhiriev/items-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldSkip     = "skip"
	FieldLimit    = "limit"
)

const (
	// bcrypt ignores input beyond 72 bytes
	maxPasswordBytes = 72
)

// InputValidator implements the Validator interface for the request payloads
// accepted by the HTTP API: models.UserCreate, models.LoginRequest,
// models.ItemInput and models.Pagination.
//
// It supports both value and pointer forms of every model type
// and allows optional field-level scoping via variadic field name arguments.
type InputValidator struct {
}

// NewInputValidator constructs a new InputValidator
// and returns it as the Validator interface.
func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateUserCreate(value, fields...)
	case *models.UserCreate:
		return v.validateUserCreate(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.ItemInput:
		return v.validateItemInput(value, fields...)
	case *models.ItemInput:
		return v.validateItemInput(*value, fields...)

	case models.Pagination:
		return v.validatePagination(value, fields...)
	case *models.Pagination:
		return v.validatePagination(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateUserCreate(user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(user.Email)
		case FieldUsername:
			err = validateUsername(user.Username)
		case FieldPassword:
			err = validatePassword(user.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Login only checks presence: any other rule would leak which usernames exist.
func (v *InputValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateItemInput(item models.ItemInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(item.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPrice:
			if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
				return ErrInvalidPrice
			}
			if item.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validatePagination(page models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSkip, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSkip:
			if page.Skip > models.MaxPageSkip {
				return ErrSkipTooLarge
			}
		case FieldLimit:
			if page.Limit == 0 {
				return ErrLimitZero
			}
			if page.Limit > models.MaxPageLimit {
				return ErrLimitTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	// reject display-name forms like "Bob <bob@x.io>"
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// validateUsername only requires a non-blank name; any other string is a
// valid username.
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
