// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/service"
	"github.com/MKhiriev/items-keeper/internal/utils"
	"github.com/MKhiriev/items-keeper/models"
)

const itemDeletedMessage = "Item deleted successfully"

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) error {
	var in models.ItemInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		return &service.ValidationError{Err: err}
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), in)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, item, http.StatusCreated)
	return err
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) error {
	page, err := pagination(r)
	if err != nil {
		return err
	}

	items, err := h.services.ItemService.ListItems(r.Context(), page)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, nonNil(items), http.StatusOK)
	return err
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, item, http.StatusOK)
	return err
}

// updateItem replaces title, description and price of an existing item.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var in models.ItemInput
	if err = utils.DecodeJSON(r, &in); err != nil {
		return &service.ValidationError{Err: err}
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), id, in)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, item, http.StatusOK)
	return err
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Int64("item_id", id).Int64("user_id", userID).Msg("item deleted")

	_, err = utils.WriteJSON(w, models.MessageResponse{Message: itemDeletedMessage}, http.StatusOK)
	return err
}
