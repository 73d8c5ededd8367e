// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init registers all routes and wraps the router with the request pipeline.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.NotFound(h.handle(func(http.ResponseWriter, *http.Request) error {
		return ErrRouteNotFound
	}))
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/", h.handle(h.root))
	router.Get("/health", h.handle(h.health))

	router.Post("/auth/token", h.handle(h.login))

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.handle(h.createUser))
		r.Get("/{id}", h.handle(h.getUser))

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.handle(h.listUsers))
			r.Get("/me", h.handle(h.currentUser))
		})
	})

	router.Route("/items", func(r chi.Router) {
		r.Get("/", h.handle(h.listItems))
		r.Get("/{id}", h.handle(h.getItem))

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.handle(h.createItem))
			r.Put("/{id}", h.handle(h.updateItem))
			r.Delete("/{id}", h.handle(h.deleteItem))
		})
	})

	return h.pipeline.Then(router)
}
