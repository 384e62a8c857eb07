// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pagewright/internal/models"
	"pagewright/internal/pages"
)

// publicPageResponse is the served shape of a published page: the page
// itself plus its field values in display form.
type publicPageResponse struct {
	Page   *models.Page         `json:"page"`
	Fields []fieldValueResponse `json:"fields"`
}

// PublicPage serves a published page by slug. Responses for public,
// non-password pages are cached in Valkey; a slug miss falls back to the
// redirect table so renamed pages keep resolving.
func (a *API) PublicPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if a.pageCache != nil {
		if cached, ok := a.pageCache.Get(ctx, slugParam); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	page, err := a.svc.GetPageBySlug(slugParam)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			a.redirectFallback(w, r, slugParam)
			return
		}
		writeError(w, err)
		return
	}

	if !page.IsPublished(time.Now()) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "page not found"})
		return
	}

	switch page.Visibility {
	case models.VisibilityPrivate:
		user := actor(r)
		if user == nil || !user.IsStaff {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "page not found"})
			return
		}
	case models.VisibilityPassword:
		if page.NeedsPassword() && !page.CheckPassword(r.Header.Get("X-Page-Password")) {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "password required"})
			return
		}
	}

	details, err := a.svc.PageFields(page.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	fields := make([]fieldValueResponse, 0, len(details))
	for _, d := range details {
		fields = append(fields, fieldValueResponse{
			FieldID:      d.Field.ID,
			GroupSlug:    d.GroupSlug,
			FieldSlug:    d.Field.Slug,
			FieldType:    string(d.Field.Type),
			Value:        d.Value.Value,
			FileURL:      d.Value.FileURL,
			DisplayValue: d.Value.DisplayValue(&d.Field),
		})
	}

	body, err := json.Marshal(publicPageResponse{Page: page, Fields: fields})
	if err != nil {
		slog.Error("encode public page failed", "error", err, "slug", slugParam)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	// Only cache pages anyone may see. Private and password-protected
	// responses depend on the caller.
	if a.pageCache != nil && page.Visibility == models.VisibilityPublic {
		a.pageCache.Set(ctx, slugParam, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// redirectFallback consults the redirect table for a renamed slug and
// answers with the redirect's type toward the page's current location.
func (a *API) redirectFallback(w http.ResponseWriter, r *http.Request, slugParam string) {
	redirect, page, err := a.svc.ResolveRedirect("/" + slugParam)
	if err != nil {
		writeError(w, err)
		return
	}
	if redirect == nil || page == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "page not found"})
		return
	}

	status := http.StatusMovedPermanently
	if redirect.RedirectType == 302 {
		status = http.StatusFound
	}
	http.Redirect(w, r, "/p/"+page.Slug, status)
}
