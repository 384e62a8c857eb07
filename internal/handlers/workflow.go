// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"pagewright/internal/models"
)

// reviewRequest is the JSON body shared by the review endpoints.
type reviewRequest struct {
	Comment string `json:"comment"`
}

// PageRequestReview puts a page into review and opens a pending ticket.
func (a *API) PageRequestReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	request, err := a.svc.RequestReview(id, actor(r).ID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// RevisionApprove completes a pending request and publishes the page.
func (a *API) RevisionApprove(w http.ResponseWriter, r *http.Request) {
	a.completeRevision(w, r, models.RevisionApproved)
}

// RevisionReject completes a pending request and returns the page to draft.
func (a *API) RevisionReject(w http.ResponseWriter, r *http.Request) {
	a.completeRevision(w, r, models.RevisionRejected)
}

func (a *API) completeRevision(w http.ResponseWriter, r *http.Request, outcome models.RevisionStatus) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid revision request id"})
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return
	}

	var (
		request *models.PageRevisionRequest
		err     error
	)
	if outcome == models.RevisionApproved {
		request, err = a.svc.Approve(id, actor(r).ID, req.Comment)
	} else {
		request, err = a.svc.Reject(id, actor(r).ID, req.Comment)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if page, pErr := a.svc.GetPage(request.PageID); pErr == nil {
		a.invalidate(r, page.Slug)
	}
	writeJSON(w, http.StatusOK, request)
}

// RevisionGet returns one revision request by ID.
func (a *API) RevisionGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid revision request id"})
		return
	}

	request, err := a.svc.GetRevisionRequest(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// PageRevisions lists a page's revision requests, newest first.
func (a *API) PageRevisions(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid page id"})
		return
	}

	requests, err := a.svc.ListRevisionRequests(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// RevisionsPending lists all open revision requests, oldest first.
func (a *API) RevisionsPending(w http.ResponseWriter, r *http.Request) {
	requests, err := a.svc.PendingRevisionRequests()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
