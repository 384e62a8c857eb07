// Package router sets up the HTTP routes and middleware chains for the
// Pagewright API. It organizes routes into the authenticated /api group
// and the public page read path.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pagewright/internal/handlers"
	"pagewright/internal/middleware"
	"pagewright/internal/store"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(users *store.UserStore, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadActor(users))

	// Health check.
	r.Get("/health", healthHandler)

	// API routes. Every endpoint requires an acting user.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireActor)

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.PageList)
			r.Post("/", api.PageCreate)
			r.Get("/{id}", api.PageGet)
			r.Patch("/{id}", api.PageUpdate)
			r.Delete("/{id}", api.PageDelete)
			r.Get("/{id}/children", api.PageChildren)
			r.Post("/{id}/move", api.PageMove)
			r.Post("/{id}/slug", api.PageChangeSlug)

			// Lifecycle transitions.
			r.Post("/{id}/publish", api.PagePublish)
			r.Post("/{id}/unpublish", api.PageUnpublish)
			r.Post("/{id}/archive", api.PageArchive)
			r.Post("/{id}/schedule", api.PageSchedule)

			// Custom field values.
			r.Get("/{id}/fields", api.PageFields)
			r.Put("/{id}/fields/{fieldID}", api.PageSetField)

			// Version history.
			r.Post("/{id}/versions", api.VersionSnapshot)
			r.Get("/{id}/versions", api.VersionList)
			r.Get("/{id}/versions/{number}", api.VersionGet)
			r.Post("/{id}/versions/{number}/restore", api.VersionRestore)

			// Review workflow.
			r.Post("/{id}/review", api.PageRequestReview)
			r.Get("/{id}/revisions", api.PageRevisions)
		})

		r.Route("/revisions", func(r chi.Router) {
			r.Get("/pending", api.RevisionsPending)
			r.Get("/{id}", api.RevisionGet)

			// Completing a review needs the publish permission.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireReviewer)
				r.Post("/{id}/approve", api.RevisionApprove)
				r.Post("/{id}/reject", api.RevisionReject)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", api.NotificationList)
			r.Get("/unread-count", api.NotificationUnreadCount)
			r.Post("/{id}/read", api.NotificationMarkRead)
		})
	})

	// Public page read path, served through the Valkey cache.
	r.Get("/p/{slug}", api.PublicPage)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
