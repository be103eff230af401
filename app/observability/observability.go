// Package observability builds the logger, tracer and metrics registry shared
// by every module.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	internmetrics "github.com/Black-And-White-Club/intern-dashboard/app/observability/metrics/intern"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config selects the observability backends.
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	MetricsEnabled bool
}

// Provider holds the constructed observability components.
type Provider struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry

	InternMetrics internmetrics.InternMetrics
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger writes JSON in production and text elsewhere.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
	), nil
}

// Init wires logging, tracing and metrics from cfg.
func Init(cfg Config, w io.Writer) (*Provider, error) {
	logger, err := NewLogger(cfg, w)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	p := &Provider{
		Logger: logger,
		Tracer: otel.Tracer(cfg.ServiceName),
	}

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		p.Registry = reg
		p.InternMetrics = internmetrics.NewPrometheus(reg)
	} else {
		p.InternMetrics = internmetrics.NewNoop()
	}

	return p, nil
}

// NewNoop returns a provider that discards logs, spans and metrics.
func NewNoop() *Provider {
	return &Provider{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:        noop.NewTracerProvider().Tracer("noop"),
		InternMetrics: internmetrics.NewNoop(),
	}
}

// MetricsHandler serves the registry, or nil when metrics are disabled.
func (p *Provider) MetricsHandler() http.Handler {
	if p.Registry == nil {
		return nil
	}
	return promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{Registry: p.Registry})
}
