package internservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	interndb "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/infrastructure/repositories"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
	internmetrics "github.com/Black-And-White-Club/intern-dashboard/app/observability/metrics/intern"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	healthStatus  = "OK"
	healthMessage = "Server is running"
)

// InternService implements the Service interface.
type InternService struct {
	gateway  DataGateway
	fallback interndomain.Fallback
	target   int
	logger   *slog.Logger
	metrics  internmetrics.InternMetrics
	tracer   trace.Tracer
}

// NewInternService creates a new InternService. A non-positive target uses
// interndomain.DefaultDonationTarget.
func NewInternService(
	gateway DataGateway,
	target int,
	logger *slog.Logger,
	metrics internmetrics.InternMetrics,
	tracer trace.Tracer,
) *InternService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = internmetrics.NewNoop()
	}
	if target <= 0 {
		target = interndomain.DefaultDonationTarget
	}
	return &InternService{
		gateway: gateway,
		target:  target,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// GetIntern returns the primary intern's profile.
func (s *InternService) GetIntern(ctx context.Context) InternResult {
	result, err := withTelemetry(s, ctx, "GetIntern", func(ctx context.Context) (InternResult, error) {
		return s.getInternLogic(ctx)
	})
	if err != nil {
		return s.fallbackIntern()
	}
	s.metrics.RecordSourceSelection(ctx, "GetIntern", string(result.Source))
	return result
}

func (s *InternService) getInternLogic(ctx context.Context) (InternResult, error) {
	if s.gateway.Connected() {
		var summary InternSummary
		rec, err := s.gateway.GetPrimary(ctx)
		if err == nil {
			summary, err = s.summarize(rec)
		}
		if err == nil {
			return InternResult{Intern: summary, Source: SourceStore}, nil
		}
		s.readFailed(ctx, "GetIntern", err)
	}
	return s.fallbackIntern(), nil
}

func (s *InternService) fallbackIntern() InternResult {
	// The fallback dataset is valid by construction.
	summary, _ := s.summarize(s.fallback.Primary())
	return InternResult{Intern: summary, Source: SourceFallback}
}

func (s *InternService) summarize(rec interndomain.InternRecord) (InternSummary, error) {
	progress, err := interndomain.Progress(rec.TotalDonations, s.target)
	if err != nil {
		return InternSummary{}, fmt.Errorf("failed to compute progress: %w", err)
	}

	summary := InternSummary{
		Name:           rec.Name,
		ReferralCode:   rec.ReferralCode,
		TotalDonations: rec.TotalDonations,
		Progress:       interndomain.RoundProgress(progress),
		Tier:           interndomain.TierFor(rec.TotalDonations),
	}
	if next, remaining, ok := interndomain.NextTier(rec.TotalDonations); ok {
		summary.Next = &NextLevel{Level: next.Name, Icon: next.Icon, Remaining: remaining}
	}
	return summary, nil
}

// GetLeaderboard returns every intern ranked by total donations. A connected
// but empty store yields an empty leaderboard.
func (s *InternService) GetLeaderboard(ctx context.Context) LeaderboardResult {
	result, err := withTelemetry(s, ctx, "GetLeaderboard", func(ctx context.Context) (LeaderboardResult, error) {
		return s.getLeaderboardLogic(ctx), nil
	})
	if err != nil {
		return s.fallbackLeaderboard()
	}
	s.metrics.RecordSourceSelection(ctx, "GetLeaderboard", string(result.Source))
	return result
}

func (s *InternService) getLeaderboardLogic(ctx context.Context) LeaderboardResult {
	if s.gateway.Connected() {
		records, err := s.gateway.ListAll(ctx)
		if err == nil {
			return LeaderboardResult{
				Entries: interndomain.BuildLeaderboard(records),
				Source:  SourceStore,
			}
		}
		s.readFailed(ctx, "GetLeaderboard", err)
	}
	return s.fallbackLeaderboard()
}

func (s *InternService) fallbackLeaderboard() LeaderboardResult {
	return LeaderboardResult{
		Entries: interndomain.BuildLeaderboard(interndomain.SortByTotal(s.fallback.All())),
		Source:  SourceFallback,
	}
}

// Health reports liveness and whether the persistent store is in use.
func (s *InternService) Health(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    healthStatus,
		Message:   healthMessage,
		Connected: s.gateway.Connected(),
	}
}

// readFailed logs a store miss and counts it unless the table was empty.
func (s *InternService) readFailed(ctx context.Context, operation string, err error) {
	if errors.Is(err, interndb.ErrNotFound) {
		s.logger.InfoContext(ctx, "Store has no interns, serving fallback",
			attr.ExtractRequestID(ctx),
			attr.String("operation", operation),
		)
		return
	}
	s.metrics.RecordReadFailure(ctx, operation)
	s.logger.WarnContext(ctx, "Store read failed, serving fallback",
		attr.ExtractRequestID(ctx),
		attr.String("operation", operation),
		attr.Error(err),
	)
}

type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps op with a span, a duration metric and panic recovery.
func withTelemetry[T any](
	s *InternService,
	ctx context.Context,
	operationName string,
	op operationFunc[T],
) (result T, err error) {
	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.DebugContext(ctx, "Operation triggered", attr.ExtractRequestID(ctx), attr.String("operation", operationName))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractRequestID(ctx),
				attr.Error(err),
			)
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractRequestID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	return result, nil
}

var _ Service = (*InternService)(nil)
