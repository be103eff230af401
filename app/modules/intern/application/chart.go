package internservice

import (
	"bytes"
	"context"
	"fmt"

	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette colours the leaderboard chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Leader     drawing.Color
	Text       drawing.Color
}

// DefaultChartPalette matches the dashboard theme.
var DefaultChartPalette = ChartPalette{
	Background: drawing.ColorFromHex("ffffff"),
	Bar:        drawing.ColorFromHex("4f46e5"),
	Leader:     drawing.ColorFromHex("f59e0b"),
	Text:       drawing.ColorFromHex("1f2937"),
}

// RenderLeaderboardChart renders the current leaderboard as a PNG bar chart.
func (s *InternService) RenderLeaderboardChart(ctx context.Context) ([]byte, Source, error) {
	lb := s.GetLeaderboard(ctx)
	data, err := withTelemetry(s, ctx, "RenderLeaderboardChart", func(ctx context.Context) ([]byte, error) {
		return GenerateLeaderboardChart(lb.Entries, DefaultChartPalette)
	})
	if err != nil {
		return nil, lb.Source, err
	}
	return data, lb.Source, nil
}

// GenerateLeaderboardChart draws one bar per entry in rank order, the leader
// highlighted.
func GenerateLeaderboardChart(entries []interndomain.LeaderboardEntry, palette ChartPalette) ([]byte, error) {
	if len(entries) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, 0, len(entries))
	top := 1.0
	for i, e := range entries {
		fill := palette.Bar
		if i == 0 {
			fill = palette.Leader
		}
		bars = append(bars, chart.Value{
			Label: e.Name,
			Value: float64(e.TotalDonations),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
		top = max(top, float64(e.TotalDonations))
	}

	graph := chart.BarChart{
		Title:    "Donations Leaderboard",
		Width:    120*len(bars) + 160,
		Height:   480,
		BarWidth: 80,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.Text,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.Text,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render leaderboard chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws an empty axis with the message as its only label.
// go-chart refuses to render a chart without series or bars.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const msg = "No donations recorded yet"

	graph := chart.BarChart{
		Width:    400,
		Height:   200,
		BarWidth: 40,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: []chart.Value{{Label: msg, Value: 0}},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}
