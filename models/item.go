// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a catalogue entry managed through the /items/ endpoints.
//
// Items carry no owner: any authenticated caller may update or delete any
// item.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemInput is the payload accepted when creating or replacing an item.
type ItemInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Apply copies the mutable fields of in onto item.
func (in ItemInput) Apply(item *Item) {
	item.Title = in.Title
	item.Description = in.Description
	item.Price = in.Price
}
