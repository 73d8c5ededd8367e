// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/utils"
	"github.com/MKhiriev/items-keeper/models"
)

// errorKind is the closed set of failures a client can observe.
type errorKind int

const (
	kindUnexpected errorKind = iota
	kindValidation
	kindAuth
	kindNotFound
	kindConflict
	kindMethodNotAllowed
	kindRateLimited
	kindStoreFailure
)

const (
	detailIncorrectCredentials = "Incorrect username or password"
	detailCouldNotValidate     = "Could not validate credentials"
	detailNotAuthenticated     = "Not authenticated"
	detailTooManyRequests      = "Too many requests. Please try again later."
	detailDatabaseError        = "An error occurred while processing your request."
	detailUnexpected           = "An unexpected error occurred."
)

func (k errorKind) status() int {
	switch k {
	case kindValidation, kindConflict:
		return http.StatusBadRequest
	case kindAuth:
		return http.StatusUnauthorized
	case kindNotFound:
		return http.StatusNotFound
	case kindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case kindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (k errorKind) String() string {
	switch k {
	case kindValidation:
		return "validation"
	case kindAuth:
		return "auth"
	case kindNotFound:
		return "not_found"
	case kindConflict:
		return "conflict"
	case kindMethodNotAllowed:
		return "method_not_allowed"
	case kindRateLimited:
		return "rate_limited"
	case kindStoreFailure:
		return "store_failure"
	default:
		return "unexpected"
	}
}

// classify maps err onto its kind and the envelope the client receives.
// Order matters: the first matching rule wins.
func classify(err error) (errorKind, models.ErrorResponse) {
	var (
		authErr       *AuthError
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
	)

	switch {
	case errors.Is(err, ErrRateLimited):
		return kindRateLimited, models.ErrorResponse{Error: "Too many requests", Detail: detailTooManyRequests}

	case errors.As(err, &authErr):
		return kindAuth, models.ErrorResponse{Error: "Authentication error", Detail: authErr.Detail}
	case errors.Is(err, service.ErrInvalidCredentials):
		return kindAuth, models.ErrorResponse{Error: "Authentication error", Detail: detailIncorrectCredentials}
	case errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenInvalidSignature),
		errors.Is(err, service.ErrTokenMalformed):
		return kindAuth, models.ErrorResponse{Error: "Authentication error", Detail: detailCouldNotValidate}

	case errors.As(err, &validationErr):
		return kindValidation, models.ErrorResponse{Error: "Validation error", Detail: validationErr.Error()}
	case errors.Is(err, utils.ErrEmptyRequestBody),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidQueryParam),
		errors.Is(err, ErrInvalidForm):
		return kindValidation, models.ErrorResponse{Error: "Validation error", Detail: err.Error()}

	case errors.As(err, &notFoundErr):
		return kindNotFound, models.ErrorResponse{Error: "Not found", Detail: notFoundErr.Error()}
	case errors.Is(err, ErrRouteNotFound):
		return kindNotFound, models.ErrorResponse{Error: "Not found", Detail: "Not Found"}
	case errors.Is(err, ErrMethodNotAllowed):
		return kindMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed", Detail: "Method Not Allowed"}

	case errors.Is(err, service.ErrUserAlreadyExists):
		return kindConflict, models.ErrorResponse{Error: "User already exists", Detail: err.Error()}

	case errors.Is(err, service.ErrStoreFailure):
		return kindStoreFailure, models.ErrorResponse{Error: "Database error", Detail: detailDatabaseError}
	}

	return kindUnexpected, models.ErrorResponse{Error: "Internal server error", Detail: detailUnexpected}
}

// writeError writes the envelope for err. Auth failures carry the Bearer
// challenge header.
func writeError(w http.ResponseWriter, err error) errorKind {
	kind, body := classify(err)
	if kind == kindAuth {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	_, _ = utils.WriteJSON(w, body, kind.status())
	return kind
}
