package internhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	internservice "github.com/Black-And-White-Club/intern-dashboard/app/modules/intern/application"
	"github.com/Black-And-White-Club/intern-dashboard/app/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// DataSourceHeader tells clients whether the payload came from the store or
// the fallback dataset.
const DataSourceHeader = "X-Data-Source"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InternHandlers implements the Handlers interface.
type InternHandlers struct {
	service internservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewInternHandlers creates a new InternHandlers instance.
func NewInternHandlers(
	service internservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &InternHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *InternHandlers) HandleInternData(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetIntern(r.Context())
	w.Header().Set(DataSourceHeader, string(result.Source))
	h.writeJSON(w, r, result.Intern)
}

func (h *InternHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetLeaderboard(r.Context())
	w.Header().Set(DataSourceHeader, string(result.Source))
	h.writeJSON(w, r, result.Entries)
}

func (h *InternHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.service.Health(r.Context()))
}

func (h *InternHandlers) HandleLeaderboardExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, source, err := h.service.ExportLeaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Leaderboard export failed", attr.ExtractRequestID(ctx), attr.Error(err))
		http.Error(w, "failed to export leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set(DataSourceHeader, string(source))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	h.writeBytes(w, r, data)
}

func (h *InternHandlers) HandleLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, source, err := h.service.RenderLeaderboardChart(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Leaderboard chart failed", attr.ExtractRequestID(ctx), attr.Error(err))
		http.Error(w, "failed to render leaderboard chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set(DataSourceHeader, string(source))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	h.writeBytes(w, r, data)
}

func (h *InternHandlers) writeBytes(w http.ResponseWriter, r *http.Request, data []byte) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "Failed to write response", attr.ExtractRequestID(ctx), attr.Error(err))
	}
}

func (h *InternHandlers) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		h.logger.WarnContext(ctx, "Failed to write response", attr.ExtractRequestID(ctx), attr.Error(err))
	}
}
