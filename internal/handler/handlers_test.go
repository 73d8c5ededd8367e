// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/items-keeper/internal/config"
	"github.com/MKhiriev/items-keeper/internal/logger"
	"github.com/MKhiriev/items-keeper/internal/ratelimit"
	"github.com/MKhiriev/items-keeper/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, ratelimit.NewLimiter(1, time.Second), config.Server{HTTPAddress: ":8000"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, ratelimit.NewLimiter(1, time.Second), config.Server{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
