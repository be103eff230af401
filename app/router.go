package app

import (
	"net/http"

	internhandlers "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/handlers"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newRouter builds the root mux shared by every module.
func newRouter(obs *observability.Provider) chi.Router {
	r := chi.NewRouter()
	r.Use(internhandlers.RequestIDMiddleware)
	r.Use(internhandlers.LoggingMiddleware(obs.Logger))
	r.Use(middleware.Recoverer)

	if h := obs.MetricsHandler(); h != nil {
		r.Method(http.MethodGet, "/metrics", h)
	}
	return r
}
