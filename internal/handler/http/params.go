// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/items-keeper/models"
)

// pathID parses the positive integer "{id}" URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// pagination reads "skip" and "limit" from the query string. Absent values
// fall back to [models.DefaultPagination]; range checks are left to the
// validator.
func pagination(r *http.Request) (models.Pagination, error) {
	page := models.DefaultPagination()
	query := r.URL.Query()

	for _, p := range []struct {
		name string
		dst  *uint64
	}{
		{"skip", &page.Skip},
		{"limit", &page.Limit},
	} {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Pagination{}, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidQueryParam, p.name)
		}
		*p.dst = v
	}

	return page, nil
}
