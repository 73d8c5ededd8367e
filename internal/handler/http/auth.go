// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/utils"
	"github.com/MKhiriev/items-keeper/models"
)

// login implements the OAuth2 password grant: form fields "username" and
// "password" in, bearer token out.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	req := models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		return &service.ValidationError{Err: err}
	}

	token, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}

	log.Info().Str("username", req.Username).Msg("token issued")
	_, err = utils.WriteJSON(w, token, http.StatusOK)
	return err
}
