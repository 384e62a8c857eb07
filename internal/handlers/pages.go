// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"pagewright/internal/models"
	"pagewright/internal/pages"
)

// createPageRequest is the JSON body for page creation.
type createPageRequest struct {
	Title           string                `json:"title"`
	Slug            string                `json:"slug"`
	Content         string                `json:"content"`
	Summary         string                `json:"summary"`
	TemplateID      uuid.UUID             `json:"template_id"`
	ParentID        *uuid.UUID            `json:"parent_id"`
	Status          models.PageStatus     `json:"status"`
	Visibility      models.PageVisibility `json:"visibility"`
	Password        string                `json:"password"`
	Order           int                   `json:"order"`
	MetaTitle       string                `json:"meta_title"`
	MetaDescription string                `json:"meta_description"`
	MetaKeywords    string                `json:"meta_keywords"`
	ScheduledAt     *time.Time            `json:"scheduled_at"`
}

// PageCreate creates a page under the optional parent.
func (a *API) PageCreate(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	page, err := a.svc.CreatePage(pages.CreatePageInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Summary:         req.Summary,
		TemplateID:      req.TemplateID,
		ParentID:        req.ParentID,
		Status:          req.Status,
		Visibility:      req.Visibility,
		Password:        req.Password,
		Order:           req.Order,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		ScheduledAt:     req.ScheduledAt,
	}, actor(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

// PageGet returns a single page by ID.
func (a *API) PageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	page, err := a.svc.GetPage(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// PageList returns the root pages of the tree.
func (a *API) PageList(w http.ResponseWriter, r *http.Request) {
	roots, err := a.svc.Roots()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roots)
}

// PageChildren returns a page's direct children.
func (a *API) PageChildren(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	children, err := a.svc.Children(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, children)
}

// updatePageRequest carries partial content edits. Absent fields are
// left unchanged.
type updatePageRequest struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Summary         *string `json:"summary"`
	Order           *int    `json:"order"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	Comment         string  `json:"comment"`
}

// PageUpdate applies a content edit; every saved edit is snapshotted.
func (a *API) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req updatePageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	page, err := a.svc.UpdatePage(id, pages.UpdatePageInput{
		Title:           req.Title,
		Content:         req.Content,
		Summary:         req.Summary,
		Order:           req.Order,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
	}, actor(r).ID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, page.Slug)
	writeJSON(w, http.StatusOK, page)
}

// PageDelete removes a childless page and its owned rows.
func (a *API) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	page, err := a.svc.GetPage(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.svc.DeletePage(id, actor(r).ID); err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, page.Slug)
	w.WriteHeader(http.StatusNoContent)
}

// PageMove reparents a page; a null parent_id moves it to the root.
func (a *API) PageMove(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req struct {
		ParentID *uuid.UUID `json:"parent_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	page, err := a.svc.MovePage(id, req.ParentID, actor(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// PageChangeSlug renames a page's slug, leaving a permanent redirect.
func (a *API) PageChangeSlug(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req struct {
		Slug string `json:"slug"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	before, err := a.svc.GetPage(id)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := a.svc.ChangeSlug(id, req.Slug, actor(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, before.Slug)
	writeJSON(w, http.StatusOK, page)
}

// statusRequest carries the optional comment attached to the snapshot a
// status transition creates.
type statusRequest struct {
	Comment string `json:"comment"`
}

// PagePublish transitions a page to published.
func (a *API) PagePublish(w http.ResponseWriter, r *http.Request) {
	a.setStatus(w, r, models.PageStatusPublished)
}

// PageUnpublish returns a page to draft.
func (a *API) PageUnpublish(w http.ResponseWriter, r *http.Request) {
	a.setStatus(w, r, models.PageStatusDraft)
}

// PageArchive transitions a page to archived.
func (a *API) PageArchive(w http.ResponseWriter, r *http.Request) {
	a.setStatus(w, r, models.PageStatusArchived)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request, status models.PageStatus) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	page, err := a.svc.SetStatus(id, status, actor(r).ID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, page.Slug)
	writeJSON(w, http.StatusOK, page)
}

// PageSchedule moves a page into the scheduled status with an explicit
// future publication time.
func (a *API) PageSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req struct {
		ScheduledAt time.Time `json:"scheduled_at"`
		Comment     string    `json:"comment"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	page, err := a.svc.Schedule(id, req.ScheduledAt, actor(r).ID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	a.invalidate(r, page.Slug)
	writeJSON(w, http.StatusOK, page)
}
