package intern

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	internservice "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/application"
	internhandlers "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/handlers"
	interndb "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/repositories"
	internmigrations "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/repositories/migrations"
	internrouter "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/router"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
	"github.com/Black-And-White-Club/intern-dashboard/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module wires the intern dashboard: gateway, service, handlers and routes.
type Module struct {
	config        *config.Config
	observability *observability.Provider
	gateway       *interndb.Gateway
	service       internservice.Service
	handlers      internhandlers.Handlers
	router        *internrouter.Router
	logger        *slog.Logger

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	closed     bool
}

// NewModule creates the intern module and mounts its routes on httpRouter.
// A nil dial uses Postgres from cfg.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Provider,
	httpRouter chi.Router,
	dial interndb.DialFunc,
) (*Module, error) {
	if cfg == nil || obs == nil {
		return nil, fmt.Errorf("intern module requires config and observability")
	}
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing intern module")

	if dial == nil {
		dial = PostgresDial(cfg, logger)
	}

	gateway := interndb.NewGateway(dial, logger, obs.InternMetrics, interndb.GatewayConfig{
		ReadTimeout: cfg.Postgres.ReadTimeout,
	})

	service := internservice.NewInternService(
		gateway,
		cfg.Dashboard.DonationTarget,
		logger,
		obs.InternMetrics,
		obs.Tracer,
	)

	handlers := internhandlers.NewInternHandlers(service, logger, obs.Tracer)

	router := internrouter.NewRouter(handlers, internrouter.Config{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		RateLimit:      cfg.HTTP.RateLimit,
		RateBurst:      cfg.HTTP.RateBurst,
	})
	if httpRouter != nil {
		router.Mount(httpRouter)
	}

	return &Module{
		config:        cfg,
		observability: obs,
		gateway:       gateway,
		service:       service,
		handlers:      handlers,
		router:        router,
		logger:        logger,
	}, nil
}

// PostgresDial opens the configured database, applying migrations first when
// auto_migrate is set.
func PostgresDial(cfg *config.Config, logger *slog.Logger) interndb.DialFunc {
	var onConnect func(ctx context.Context, db *bun.DB) error
	if cfg.Postgres.AutoMigrate {
		onConnect = func(ctx context.Context, db *bun.DB) error {
			group, err := internmigrations.Run(ctx, db)
			if err != nil {
				return err
			}
			if !group.IsZero() {
				logger.InfoContext(ctx, "Applied intern migrations", attr.String("group", group.String()))
			}
			return nil
		}
	}
	return interndb.PostgresDialer(cfg.Postgres.DSN, cfg.Postgres.ConnectTimeout, onConnect)
}

// Run starts the connection attempt and blocks until ctx is cancelled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.InfoContext(ctx, "Starting intern module")

	if wg != nil {
		defer wg.Done()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Close either sees the cancel func and waits on Done, or runs first and
	// the attempt never starts.
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.logger.InfoContext(ctx, "Intern module closed before start")
		return
	}
	m.cancelFunc = cancel
	m.gateway.Connect(ctx)
	m.mu.Unlock()

	select {
	case <-m.gateway.Done():
		if m.gateway.Connected() {
			m.logger.InfoContext(ctx, "Intern module started", attr.String("store", m.gateway.State().String()))
		} else {
			m.logger.WarnContext(ctx, "Intern module started without persistent store, using fallback data",
				attr.Error(m.gateway.LastError()),
			)
		}
	case <-ctx.Done():
	}

	<-ctx.Done()
	<-m.gateway.Done()
	m.logger.InfoContext(ctx, "Intern module goroutine stopped")
}

// Close stops the module. The connection attempt is cancelled and awaited
// before the pool is closed.
func (m *Module) Close() error {
	m.logger.Info("Stopping intern module")

	m.mu.Lock()
	m.closed = true
	cancel := m.cancelFunc
	m.mu.Unlock()
	if cancel != nil {
		cancel()
		<-m.gateway.Done()
	}

	if err := m.gateway.Close(); err != nil {
		m.logger.Error("Error closing persistent store", attr.Error(err))
		return fmt.Errorf("error closing store: %w", err)
	}

	m.logger.Info("Intern module stopped")
	return nil
}

// GetService returns the intern service.
func (m *Module) GetService() internservice.Service {
	return m.service
}

// Gateway exposes the persistence gateway for health reporting.
func (m *Module) Gateway() *interndb.Gateway {
	return m.gateway
}
