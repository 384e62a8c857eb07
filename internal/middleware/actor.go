// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"pagewright/internal/models"
	"pagewright/internal/store"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// ActorKey is the context key for the acting user.
	ActorKey contextKey = "actor"
)

// LoadActor resolves the X-User header to a user record and stores it in
// the request context. Downstream handlers access it via ActorFromCtx().
// This middleware does NOT enforce authentication; it just loads the
// actor if the header names a known active user.
func LoadActor(users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User")
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindByID(id)
			if err != nil || user == nil || !user.IsActive {
				// Treat as anonymous rather than blocking.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ActorKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireActor returns 401 when no acting user was resolved.
// Must be applied after LoadActor in the middleware chain.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ActorFromCtx(r.Context()) == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireReviewer returns 403 unless the acting user is staff with the
// publish permission. Must be applied after RequireActor.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromCtx(r.Context())
		if actor == nil || !actor.IsStaff || !actor.CanPublish {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ActorFromCtx extracts the acting user from the request context.
// Returns nil when no actor is loaded.
func ActorFromCtx(ctx context.Context) *models.User {
	user, _ := ctx.Value(ActorKey).(*models.User)
	return user
}
