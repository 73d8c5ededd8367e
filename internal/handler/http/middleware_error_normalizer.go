// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/items-keeper/internal/logger"
)

// errorSlot holds the error reported for the current request.
type errorSlot struct {
	err  error
	kind errorKind
}

type errorSlotKey struct{}

var errPanic = errors.New("handler panicked")

// raise reports err for the request: the envelope is written to w at once
// and the error is left in the slot for the normalizer to log.
func raise(w http.ResponseWriter, r *http.Request, err error) {
	kind := writeError(w, err)

	slot, ok := r.Context().Value(errorSlotKey{}).(*errorSlot)
	if !ok {
		logger.FromRequest(r).Err(err).Str("kind", kind.String()).Msg("request failed")
		return
	}
	slot.err = err
	slot.kind = kind
}

// errorNormalizerStage owns the error slot of each request, recovers panics
// and logs every failure with its full error chain.
type errorNormalizerStage struct{}

func newErrorNormalizerStage() *errorNormalizerStage {
	return &errorNormalizerStage{}
}

func (s *errorNormalizerStage) Name() string {
	return "error-normalizer"
}

func (s *errorNormalizerStage) Intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slot := &errorSlot{}
		rw := newResponseWriter(w)
		r = r.WithContext(context.WithValue(r.Context(), errorSlotKey{}, slot))
		log := logger.FromRequest(r)

		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				log.Error().
					Str("func", "*errorNormalizerStage.Intercept").
					Interface("panic", p).
					Str("stack", string(debug.Stack())).
					Msg("recovered from panic")
				if !rw.wroteHeader {
					writeError(rw, fmt.Errorf("%w: %v", errPanic, p))
				}
				return
			}

			if slot.err == nil {
				return
			}
			event := log.Info()
			if slot.kind.status() >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.Err(slot.err).
				Str("kind", slot.kind.String()).
				Int("status", slot.kind.status()).
				Msg("request failed")
		}()

		next.ServeHTTP(rw, r)
	})
}
