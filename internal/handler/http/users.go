// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/utils"
	"github.com/MKhiriev/items-keeper/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var in models.UserCreate
	if err := utils.DecodeJSON(r, &in); err != nil {
		return &service.ValidationError{Err: err}
	}

	user, err := h.services.UserService.CreateUser(r.Context(), in)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusCreated)
	return err
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	page, err := pagination(r)
	if err != nil {
		return err
	}

	users, err := h.services.UserService.ListUsers(r.Context(), page)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, nonNil(users), http.StatusOK)
	return err
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return errNoUserInContext
	}

	_, err := utils.WriteJSON(w, user, http.StatusOK)
	return err
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
