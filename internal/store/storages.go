// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/items-keeper/internal/logger"

type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
	}
}
