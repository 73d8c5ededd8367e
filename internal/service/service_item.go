// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/store"
	"github.com/MKhiriev/items-keeper/internal/validators"
	"github.com/MKhiriev/items-keeper/models"
)

// itemService manages items. Items have no owner, so every authenticated
// caller may change any item.
type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, validator validators.Validator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *itemService) CreateItem(ctx context.Context, input models.ItemInput) (models.Item, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Item{}, &ValidationError{Err: err}
	}

	var item models.Item
	input.Apply(&item)

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, storeFailure(err)
	}

	logger.FromContext(ctx).Info().Int64("item_id", created.ID).Msg("item created")
	return created, nil
}

func (s *itemService) ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	if err := s.validator.Validate(ctx, page); err != nil {
		return nil, &ValidationError{Err: err}
	}

	items, err := s.itemRepository.ListItems(ctx, page)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, s.translate(err, id)
	}
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, input models.ItemInput) (models.Item, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Item{}, &ValidationError{Err: err}
	}

	item := models.Item{ID: id}
	input.Apply(&item)

	updated, err := s.itemRepository.UpdateItem(ctx, item)
	if err != nil {
		return models.Item{}, s.translate(err, id)
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Msg("item updated")
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		return s.translate(err, id)
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Msg("item deleted")
	return nil
}

func (s *itemService) translate(err error, id int64) error {
	if errors.Is(err, store.ErrItemNotFound) {
		return &NotFoundError{Resource: "Item", ID: id}
	}
	return storeFailure(err)
}
