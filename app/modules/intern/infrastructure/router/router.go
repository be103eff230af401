package internrouter

import (
	internhandlers "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

const (
	// BasePath prefixes every dashboard route.
	BasePath = "/api"

	InternDataPath        = "/intern-data"
	LeaderboardPath       = "/leaderboard"
	LeaderboardExportPath = "/leaderboard/export.xlsx"
	LeaderboardChartPath  = "/leaderboard/chart.png"
	HealthPath            = "/health"
)

// Config holds the cross-cutting HTTP policy for the dashboard routes.
type Config struct {
	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
}

// Router mounts the dashboard HTTP routes.
type Router struct {
	handlers internhandlers.Handlers
	limiter  *internhandlers.IPRateLimiter
	cfg      Config
}

// NewRouter creates a new intern router.
func NewRouter(handlers internhandlers.Handlers, cfg Config) *Router {
	return &Router{
		handlers: handlers,
		limiter:  internhandlers.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		cfg:      cfg,
	}
}

// Mount registers the routes on mux under BasePath.
func (r *Router) Mount(mux chi.Router) {
	mux.Route(BasePath, func(api chi.Router) {
		api.Use(internhandlers.CORSMiddleware(r.cfg.AllowedOrigins))

		// Health is not rate limited.
		api.Get(HealthPath, r.handlers.HandleHealth)

		api.Group(func(api chi.Router) {
			api.Use(internhandlers.RateLimitMiddleware(r.limiter))
			api.Get(InternDataPath, r.handlers.HandleInternData)
			api.Get(LeaderboardPath, r.handlers.HandleLeaderboard)
			api.Get(LeaderboardExportPath, r.handlers.HandleLeaderboardExport)
			api.Get(LeaderboardChartPath, r.handlers.HandleLeaderboardChart)
		})
	})
}
