package rest

import (
	"log/slog"
	"net/http"

	"github.com/pairlog/pairlog-backend/internal/config"
	"github.com/pairlog/pairlog-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Users    *UserHandler
	Entries  *EntryHandler
	Activity *ActivityHandler
	Summary  *SummaryHandler
	Images   *ImageHandler
}

// NewRouter mounts all REST routes and wraps them in the shared
// middleware chain.
func NewRouter(h Handlers, cfg config.CORSConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("PUT /users/{id}", h.Users.Upsert)
	mux.HandleFunc("GET /users/{id}", h.Users.Get)
	mux.HandleFunc("GET /users", h.Users.List)

	mux.HandleFunc("POST /entries", h.Entries.Create)
	mux.HandleFunc("GET /entries", h.Summary.ListEntries)
	mux.HandleFunc("GET /entries/{id}", h.Entries.Get)
	mux.HandleFunc("PATCH /entries/{id}", h.Entries.Update)
	mux.HandleFunc("DELETE /entries/{id}", h.Entries.Delete)

	mux.HandleFunc("POST /entries/{id}/activities", h.Activity.Record)
	mux.HandleFunc("GET /entries/{id}/activities", h.Activity.List)
	mux.HandleFunc("POST /entries/{id}/notifications/read", h.Activity.MarkRead)
	mux.HandleFunc("GET /notifications/unread-count", h.Activity.UnreadCount)

	mux.HandleFunc("GET /summary/weekly", h.Summary.Weekly)

	mux.HandleFunc("POST /images", h.Images.Upload)

	// Each wrap goes outside the previous one, so RequestID ends up
	// outermost: the id exists before anything logs or recovers.
	var handler http.Handler = mux
	for _, mw := range []middleware.Middleware{
		middleware.CORS(cfg),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Requester,
		middleware.RequestID(),
	} {
		handler = mw(handler)
	}
	return handler
}
