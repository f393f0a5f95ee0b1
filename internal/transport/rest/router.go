package rest

import (
	"net/http"

	"github.com/heartmarshall/premier-dashboard/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Entities *EntityHandler

	// Protect wraps every /api route. LoginLimit wraps POST /auth/login.
	// Either may be nil.
	Protect    middleware.Middleware
	LoginLimit middleware.Middleware
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	protect := middleware.Chain(h.Protect)
	limit := middleware.Chain(h.LoginLimit)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/login", limit(http.HandlerFunc(h.Auth.Login)))

	api := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, protect(fn))
	}
	api("GET /api/export", h.Entities.ExportAll)
	api("GET /api/{entity}", h.Entities.List)
	api("POST /api/{entity}", h.Entities.Create)
	api("GET /api/{entity}/stats", h.Entities.Stats)
	api("GET /api/{entity}/export", h.Entities.Export)
	api("GET /api/{entity}/{id}", h.Entities.Get)
	api("PUT /api/{entity}/{id}", h.Entities.Update)
	api("DELETE /api/{entity}/{id}", h.Entities.Delete)

	return mux
}
