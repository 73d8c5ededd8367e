// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/utils"
)

// auth requires a valid bearer token and stores the resolved user in the
// request context under [utils.UserCtxKey].
//
// A missing header yields "Not authenticated"; any token or subject problem
// yields "Could not validate credentials". Store failures keep their own kind.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			raise(w, r, &AuthError{Detail: detailNotAuthenticated, Err: ErrEmptyAuthorizationHeader})
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			raise(w, r, &AuthError{Detail: detailNotAuthenticated, Err: err})
			return
		}

		user, err := h.services.AuthService.ResolveCurrentUser(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrStoreFailure) {
				raise(w, r, err)
				return
			}
			raise(w, r, &AuthError{Detail: detailCouldNotValidate, Err: err})
			return
		}

		log.Debug().Int64("user_id", user.ID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), &user)))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>". The
// scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
