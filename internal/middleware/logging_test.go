// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggerPassThrough(t *testing.T) {
	t.Run("preserves status and body", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"x"}`))
		})

		req := httptest.NewRequest(http.MethodPost, "/api/pages", nil)
		rr := httptest.NewRecorder()
		Logger(inner).ServeHTTP(rr, req)

		if rr.Code != http.StatusCreated {
			t.Errorf("status: got %d, want 201", rr.Code)
		}
		if rr.Body.String() != `{"id":"x"}` {
			t.Errorf("body: got %q", rr.Body.String())
		}
	})

	t.Run("defaults to 200 when WriteHeader is never called", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Write body without calling WriteHeader; Go defaults to 200.
			w.Write([]byte("ok"))
		})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		Logger(inner).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}

func TestResponseWriterFirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("captured status: got %d, want 404", rw.statusCode)
	}
}

func TestRecoverer(t *testing.T) {
	t.Run("catches panic and returns 500", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("something went wrong")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
		rr := httptest.NewRecorder()

		// Should NOT panic; the middleware catches it.
		Recoverer(inner).ServeHTTP(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Internal Server Error") {
			t.Errorf("body: got %q", rr.Body.String())
		}
	})

	t.Run("normal pass-through without panic", func(t *testing.T) {
		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
		rr := httptest.NewRecorder()
		Recoverer(inner).ServeHTTP(rr, req)

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}
