package internhandlers

import (
	"context"

	internservice "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/application"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	GetInternFunc              func(ctx context.Context) internservice.InternResult
	GetLeaderboardFunc         func(ctx context.Context) internservice.LeaderboardResult
	HealthFunc                 func(ctx context.Context) internservice.HealthStatus
	ExportLeaderboardFunc      func(ctx context.Context) ([]byte, internservice.Source, error)
	RenderLeaderboardChartFunc func(ctx context.Context) ([]byte, internservice.Source, error)
}

func NewFakeService() *FakeService {
	return &FakeService{
		trace: []string{},
	}
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) GetIntern(ctx context.Context) internservice.InternResult {
	f.record("GetIntern")
	if f.GetInternFunc != nil {
		return f.GetInternFunc(ctx)
	}
	return internservice.InternResult{Source: internservice.SourceFallback}
}

func (f *FakeService) GetLeaderboard(ctx context.Context) internservice.LeaderboardResult {
	f.record("GetLeaderboard")
	if f.GetLeaderboardFunc != nil {
		return f.GetLeaderboardFunc(ctx)
	}
	return internservice.LeaderboardResult{Source: internservice.SourceFallback}
}

func (f *FakeService) Health(ctx context.Context) internservice.HealthStatus {
	f.record("Health")
	if f.HealthFunc != nil {
		return f.HealthFunc(ctx)
	}
	return internservice.HealthStatus{Status: "OK", Message: "Server is running"}
}

func (f *FakeService) ExportLeaderboard(ctx context.Context) ([]byte, internservice.Source, error) {
	f.record("ExportLeaderboard")
	if f.ExportLeaderboardFunc != nil {
		return f.ExportLeaderboardFunc(ctx)
	}
	return nil, internservice.SourceFallback, nil
}

func (f *FakeService) RenderLeaderboardChart(ctx context.Context) ([]byte, internservice.Source, error) {
	f.record("RenderLeaderboardChart")
	if f.RenderLeaderboardChartFunc != nil {
		return f.RenderLeaderboardChartFunc(ctx)
	}
	return nil, internservice.SourceFallback, nil
}

// --- Accessors for assertions ---

func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ internservice.Service = (*FakeService)(nil)
