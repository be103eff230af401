package internservice

import (
	"context"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
)

// DataGateway is the persistence surface the service reads through.
// *interndb.Gateway satisfies it.
type DataGateway interface {
	Connected() bool
	GetPrimary(ctx context.Context) (interndomain.InternRecord, error)
	ListAll(ctx context.Context) ([]interndomain.InternRecord, error)
}

// Service answers the dashboard queries. Data operations never fail: any
// store problem is answered from the fallback dataset.
type Service interface {
	GetIntern(ctx context.Context) InternResult
	GetLeaderboard(ctx context.Context) LeaderboardResult
	Health(ctx context.Context) HealthStatus

	// ExportLeaderboard renders the current leaderboard as an XLSX workbook.
	ExportLeaderboard(ctx context.Context) ([]byte, Source, error)
	// RenderLeaderboardChart renders the current leaderboard as a PNG bar chart.
	RenderLeaderboardChart(ctx context.Context) ([]byte, Source, error)
}
