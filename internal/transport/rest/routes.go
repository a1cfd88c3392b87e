package rest

import (
	"net/http"

	"github.com/dingla0/TranslationTracker/internal/transport/middleware"
)

// APIPrefix is the path prefix of the versioned JSON API.
const APIPrefix = "/api/v1"

// Handlers groups everything mounted by Routes.
type Handlers struct {
	Health   *HealthHandler
	Segments *SegmentHandler
	Matches  *MatchHandler
	Feedback *FeedbackHandler
	Versions *VersionHandler
}

// Guards are per-route middleware. AdminOnly protects segment removal;
// SearchLimit throttles match lookups.
type Guards struct {
	AdminOnly   middleware.Middleware
	SearchLimit middleware.Middleware
}

// Routes registers all endpoints on a new ServeMux. Nil guards are skipped.
func Routes(h Handlers, g Guards) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST "+APIPrefix+"/segments", h.Segments.Create)
	mux.HandleFunc("GET "+APIPrefix+"/segments", h.Segments.List)
	mux.HandleFunc("GET "+APIPrefix+"/segments/{id}", h.Segments.Get)
	mux.HandleFunc("PATCH "+APIPrefix+"/segments/{id}", h.Segments.Update)
	mux.Handle("DELETE "+APIPrefix+"/segments/{id}", guard(g.AdminOnly, h.Segments.Delete))

	mux.Handle("GET "+APIPrefix+"/matches", guard(g.SearchLimit, h.Matches.Search))

	mux.HandleFunc("POST "+APIPrefix+"/segments/{id}/feedback", h.Feedback.Record)
	mux.HandleFunc("GET "+APIPrefix+"/segments/{id}/feedback", h.Feedback.List)
	mux.HandleFunc("GET "+APIPrefix+"/segments/{id}/feedback/summary", h.Feedback.Summary)

	mux.HandleFunc("POST "+APIPrefix+"/segments/{id}/versions", h.Versions.Record)
	mux.HandleFunc("GET "+APIPrefix+"/segments/{id}/versions", h.Versions.List)

	return mux
}

func guard(mw middleware.Middleware, h http.HandlerFunc) http.Handler {
	return middleware.Chain(mw)(h)
}
