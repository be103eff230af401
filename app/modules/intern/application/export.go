package internservice

import (
	"context"
	"fmt"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/xuri/excelize/v2"
)

const leaderboardSheet = "Leaderboard"

var leaderboardHeader = []any{"Rank", "Badge", "Name", "Total Donations", "Tier"}

// ExportLeaderboard renders the current leaderboard as an XLSX workbook.
func (s *InternService) ExportLeaderboard(ctx context.Context) ([]byte, Source, error) {
	lb := s.GetLeaderboard(ctx)
	data, err := withTelemetry(s, ctx, "ExportLeaderboard", func(ctx context.Context) ([]byte, error) {
		return BuildLeaderboardWorkbook(lb.Entries)
	})
	if err != nil {
		return nil, lb.Source, err
	}
	return data, lb.Source, nil
}

// BuildLeaderboardWorkbook writes one row per entry under a header row.
// Rank is 1-based in the sheet.
func BuildLeaderboardWorkbook(entries []interndomain.LeaderboardEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(leaderboardSheet, "A1", &leaderboardHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{e.Rank + 1, e.Badge.Label, e.Name, e.TotalDonations, string(e.Tier.Name)}
		if err := f.SetSheetRow(leaderboardSheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(leaderboardSheet, "C", "C", 24); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
