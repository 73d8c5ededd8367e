// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("items-keeper-server", true)
	l.Logger = l.Output(&buf)

	l.Info().Msg("started")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "items-keeper-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_GlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	NewLogger("level", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	NewLogger("level", true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestWithStr_EnrichesChildOnly(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	parent.WithStr("trace_id", "abc").Info().Msg("child")
	assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "inherited").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Info().Msg("child")

	assert.Equal(t, "inherited", lastEntry(t, &buf)["role"])
}

func TestFromRequest_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	requestLogger := (&Logger{zerolog.New(&buf)}).WithStr("trace_id", "req-1")

	req := httptest.NewRequest(http.MethodGet, "/items/", nil)
	req = req.WithContext(requestLogger.WithContext(req.Context()))

	FromRequest(req).Info().Msg("handled")
	assert.Equal(t, "req-1", lastEntry(t, &buf)["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("no logger attached") })
}
