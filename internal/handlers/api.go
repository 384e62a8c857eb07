// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Pagewright API.
// Handlers are grouped by concern (pages, versions, workflow,
// notifications, public reads) and receive their dependencies through
// the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pagewright/internal/cache"
	"pagewright/internal/middleware"
	"pagewright/internal/models"
	"pagewright/internal/pages"
)

// API groups the JSON handlers for the versioning and workflow endpoints.
// pageCache may be nil when Valkey is not configured; public reads then
// always hit the database.
type API struct {
	svc       *pages.Service
	pageCache *cache.PageCache
}

// NewAPI creates a new API handler group.
func NewAPI(svc *pages.Service, pageCache *cache.PageCache) *API {
	return &API{svc: svc, pageCache: pageCache}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeError maps service errors onto HTTP status codes. Unrecognized
// errors are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, err error) {
	var vErr *pages.ValidationError
	var fErr *pages.FieldValidationError

	switch {
	case errors.Is(err, pages.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, pages.ErrInvalidState),
		errors.Is(err, pages.ErrHasChildren),
		errors.Is(err, pages.ErrCycle):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.As(err, &fErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: fErr.Reason, Field: fErr.FieldSlug})
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Msg})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// urlUUID parses the named chi URL parameter as a UUID.
func urlUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// actor returns the acting user loaded by the middleware. Routes behind
// RequireActor always have one.
func actor(r *http.Request) *models.User {
	return middleware.ActorFromCtx(r.Context())
}

// invalidate drops the page's cached public body, if caching is enabled.
func (a *API) invalidate(r *http.Request, slug string) {
	if a.pageCache != nil && slug != "" {
		a.pageCache.Invalidate(r.Context(), slug)
	}
}
