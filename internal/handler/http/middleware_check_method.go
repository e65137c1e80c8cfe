// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler intended to be registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with 405 whenever a path matches a
// registered route but the method is not handled. This handler answers with
// notFound instead, so that an unsupported method looks exactly like an
// unknown path. All routes, nested sub-routers included, are walked with
// [chi.Walk]; a request whose method turns out to be registered for the
// exact path is forwarded to the router as usual.
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registered := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == r.Method && route == r.URL.Path {
				registered = true
			}
			return nil
		})

		if !registered {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
