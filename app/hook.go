package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
)

// Shutdown drains the HTTP server within the configured timeout, then stops
// the modules.
func (app *App) Shutdown(ctx context.Context) error {
	logger := app.Observability.Logger
	logger.InfoContext(ctx, "Shutting down server")

	ctx, cancel := context.WithTimeout(ctx, app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.server.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Server forced to shutdown", attr.Error(err))
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}

	if app.stopModules != nil {
		app.stopModules()
	}
	app.wg.Wait()
	if err := app.InternModule.Close(); err != nil {
		errs = append(errs, err)
	}

	logger.InfoContext(ctx, "Shutdown complete")
	return errors.Join(errs...)
}
