package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
)

// Start listens on the configured port and serves until ctx is cancelled.
func (app *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.server.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve runs the modules and the HTTP server on ln, then shuts both down
// once ctx is cancelled or the server fails.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	logger := app.Observability.Logger

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.stopModules = cancel

	app.wg.Add(1)
	go app.InternModule.Run(runCtx, &app.wg)

	serveErr := make(chan error, 1)
	go func() {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	addr := ln.Addr().String()
	logger.InfoContext(ctx, "Server running", attr.String("addr", addr))
	logger.InfoContext(ctx, "API endpoints available", attr.String("base_url", fmt.Sprintf("http://%s/api/", displayHost(addr))))

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("http server failed: %w", err)
		}
	}

	if err := app.Shutdown(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// displayHost rewrites wildcard listen addresses to localhost for log output.
func displayHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
