// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// VersionSnapshot records a manual version of the page's current state.
func (a *API) VersionSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req struct {
		Comment string `json:"comment"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	version, err := a.svc.Snapshot(id, actor(r).ID, req.Comment, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, version)
}

// VersionList returns a page's versions, newest first.
func (a *API) VersionList(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	versions, err := a.svc.ListVersions(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

// VersionGet returns one version of a page by its number.
func (a *API) VersionGet(w http.ResponseWriter, r *http.Request) {
	id, number, ok := versionParams(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id or version number"})
		return
	}

	version, err := a.svc.GetVersion(id, number)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// VersionRestore copies a version's content back onto the live page and
// reports any snapshot keys that no longer resolve against the schema.
func (a *API) VersionRestore(w http.ResponseWriter, r *http.Request) {
	id, number, ok := versionParams(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id or version number"})
		return
	}

	result, err := a.svc.Restore(id, number, actor(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, result.Page.Slug)
	writeJSON(w, http.StatusOK, result)
}

// versionParams parses the page ID and version number URL parameters.
func versionParams(r *http.Request) (pageID uuid.UUID, number int, ok bool) {
	id, idOK := urlUUID(r, "id")
	if !idOK {
		return id, 0, false
	}
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		return id, 0, false
	}
	return id, number, true
}
