package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Black-And-White-Club/intern-dashboard/app/modules/intern"
	interndb "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/repositories"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability"
	"github.com/Black-And-White-Club/intern-dashboard/config"
	"github.com/go-chi/chi/v5"
)

// App owns the HTTP server and the modules behind it.
type App struct {
	Config        *config.Config
	Observability *observability.Provider
	Router        chi.Router
	InternModule  *intern.Module

	server      *http.Server
	wg          sync.WaitGroup
	stopModules context.CancelFunc
}

type options struct {
	dial interndb.DialFunc
}

// Option customises NewApp.
type Option func(*options)

// WithDialer replaces the Postgres dialer, mainly for tests.
func WithDialer(dial interndb.DialFunc) Option {
	return func(o *options) { o.dial = dial }
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Provider, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	router := newRouter(obs)

	internModule, err := intern.NewModule(ctx, cfg, obs, router, o.dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize intern module: %w", err)
	}

	return &App{
		Config:        cfg,
		Observability: obs,
		Router:        router,
		InternModule:  internModule,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}
