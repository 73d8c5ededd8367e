// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "today", "abc123")

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123\n", info.String())
}

func TestItemInput_Apply(t *testing.T) {
	desc := "shiny"
	item := Item{ID: 7, Title: "old", Price: 1}

	ItemInput{Title: "new", Description: &desc, Price: 9.5}.Apply(&item)

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "new", item.Title)
	assert.Equal(t, &desc, item.Description)
	assert.Equal(t, 9.5, item.Price)
}
