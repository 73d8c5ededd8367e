// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/models"
)

// itemRepository is the database/sql implementation of [ItemRepository]
// over the "items" table.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := r.db.buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to build query")
		return models.Item{}, err
	}

	id, err := r.db.insertReturningID(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	item.ID = id
	return item, nil
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Msg("failed to build query")
		return models.Item{}, err
	}

	var item models.Item
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		scanErr := row.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.CreatedAt, &item.UpdatedAt)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			return ErrItemNotFound
		case scanErr != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			log.Err(err).Str("func", "*itemRepository.GetItem").Int64("item_id", id).Msg("failed to get item")
		}
		return models.Item{}, err
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, page models.Pagination) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListItemsQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to build query")
		return nil, err
	}

	var items []models.Item
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		items = make([]models.Item, 0, page.Limit)
		for rows.Next() {
			var item models.Item
			if err = rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			items = append(items, item)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.ListItems").
			Uint64("skip", page.Skip).
			Uint64("limit", page.Limit).
			Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

// UpdateItem overwrites the mutable fields of the stored item and returns the
// row as persisted.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateItemQuery(item, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("failed to build query")
		return models.Item{}, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", item.ID).Msg("error updating item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", item.ID).Msg("error reading affected rows")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Item{}, ErrItemNotFound
	}

	return r.GetItem(ctx, item.ID)
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("failed to build query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", id).Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
