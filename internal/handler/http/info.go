// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK)
	return err
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
	return err
}
