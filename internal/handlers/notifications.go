// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
)

// NotificationList returns the acting user's notifications, newest first.
// The optional limit query parameter caps the result.
func (a *API) NotificationList(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := a.svc.Notifications(actor(r).ID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// NotificationUnreadCount returns the acting user's unread count.
func (a *API) NotificationUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := a.svc.UnreadCount(actor(r).ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": count})
}

// NotificationMarkRead marks one notification read. Re-marking an
// already-read notification succeeds without changing its read stamp.
func (a *API) NotificationMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid notification id"})
		return
	}

	n, err := a.svc.MarkNotificationRead(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
