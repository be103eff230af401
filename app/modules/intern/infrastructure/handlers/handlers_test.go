package internhandlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	internservice "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/application"
	interndomain "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/domain"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestHandlers(svc internservice.Service) Handlers {
	return NewInternHandlers(
		svc,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
	)
}

func TestInternHandlers_JSONEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*FakeService)
		handle     func(Handlers) http.HandlerFunc
		wantBody   string
		wantSource string
	}{
		{
			name: "intern data",
			setup: func(f *FakeService) {
				f.GetInternFunc = func(context.Context) internservice.InternResult {
					return internservice.InternResult{
						Intern: internservice.InternSummary{
							Name:           "Alex Johnson",
							ReferralCode:   "alexj2025",
							TotalDonations: 1250,
							Progress:       62.5,
							Tier:           interndomain.TierFor(1250),
						},
						Source: internservice.SourceStore,
					}
				}
			},
			handle: func(h Handlers) http.HandlerFunc { return h.HandleInternData },
			wantBody: `{"name":"Alex Johnson","referralCode":"alexj2025","totalDonations":1250,"progress":62.5,
				"tier":{"level":"Gold","icon":"🥇","threshold":1000}}`,
			wantSource: "store",
		},
		{
			name: "leaderboard",
			setup: func(f *FakeService) {
				f.GetLeaderboardFunc = func(context.Context) internservice.LeaderboardResult {
					return internservice.LeaderboardResult{
						Entries: interndomain.BuildLeaderboard([]interndomain.InternRecord{
							{Name: "Maria Garcia", ReferralCode: "mariag2025", TotalDonations: 1100},
						}),
						Source: internservice.SourceFallback,
					}
				}
			},
			handle: func(h Handlers) http.HandlerFunc { return h.HandleLeaderboard },
			wantBody: `[{"name":"Maria Garcia","totalDonations":1100,"rank":0,
				"badge":{"label":"1st","icon":"🥇"},"tier":{"level":"Gold","icon":"🥇","threshold":1000}}]`,
			wantSource: "fallback",
		},
		{
			name: "empty leaderboard",
			setup: func(f *FakeService) {
				f.GetLeaderboardFunc = func(context.Context) internservice.LeaderboardResult {
					return internservice.LeaderboardResult{
						Entries: interndomain.BuildLeaderboard(nil),
						Source:  internservice.SourceStore,
					}
				}
			},
			handle:     func(h Handlers) http.HandlerFunc { return h.HandleLeaderboard },
			wantBody:   `[]`,
			wantSource: "store",
		},
		{
			name: "health",
			setup: func(f *FakeService) {
				f.HealthFunc = func(context.Context) internservice.HealthStatus {
					return internservice.HealthStatus{Status: "OK", Message: "Server is running", Connected: true}
				}
			},
			handle:   func(h Handlers) http.HandlerFunc { return h.HandleHealth },
			wantBody: `{"status":"OK","message":"Server is running","mongoConnected":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFakeService()
			tt.setup(svc)
			rr := httptest.NewRecorder()

			tt.handle(newTestHandlers(svc))(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantSource, rr.Header().Get(DataSourceHeader))
		})
	}
}

func TestInternHandlers_BinaryEndpoints(t *testing.T) {
	tests := []struct {
		name            string
		setup           func(*FakeService, error)
		handle          func(Handlers) http.HandlerFunc
		wantContentType string
	}{
		{
			name: "export",
			setup: func(f *FakeService, err error) {
				f.ExportLeaderboardFunc = func(context.Context) ([]byte, internservice.Source, error) {
					return []byte("PK"), internservice.SourceStore, err
				}
			},
			handle:          func(h Handlers) http.HandlerFunc { return h.HandleLeaderboardExport },
			wantContentType: xlsxContentType,
		},
		{
			name: "chart",
			setup: func(f *FakeService, err error) {
				f.RenderLeaderboardChartFunc = func(context.Context) ([]byte, internservice.Source, error) {
					return []byte("\x89PNG"), internservice.SourceStore, err
				}
			},
			handle:          func(h Handlers) http.HandlerFunc { return h.HandleLeaderboardChart },
			wantContentType: "image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" success", func(t *testing.T) {
			svc := NewFakeService()
			tt.setup(svc, nil)
			rr := httptest.NewRecorder()

			tt.handle(newTestHandlers(svc))(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, "store", rr.Header().Get(DataSourceHeader))
			assert.NotEmpty(t, rr.Body.Bytes())
		})
		t.Run(tt.name+" render failure", func(t *testing.T) {
			svc := NewFakeService()
			tt.setup(svc, errors.New("encoder exploded"))
			rr := httptest.NewRecorder()

			tt.handle(newTestHandlers(svc))(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
		})
		t.Run(tt.name+" write failure is logged", func(t *testing.T) {
			svc := NewFakeService()
			tt.setup(svc, nil)
			var logs bytes.Buffer
			h := NewInternHandlers(svc, slog.New(slog.NewTextHandler(&logs, nil)), noop.NewTracerProvider().Tracer("test"))
			w := &brokenWriter{ResponseRecorder: httptest.NewRecorder()}

			tt.handle(h)(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, logs.String(), "Failed to write response")
			assert.Contains(t, logs.String(), "connection reset")
		})
	}
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (b *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
