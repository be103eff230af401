package internmetrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)
	ctx := context.Background()

	m.RecordSourceSelection(ctx, "GetIntern", "fallback")
	m.RecordSourceSelection(ctx, "GetIntern", "fallback")
	m.RecordSourceSelection(ctx, "GetLeaderboard", "store")
	m.RecordReadFailure(ctx, "GetIntern")
	m.RecordOperationDuration(ctx, "GetIntern", 5*time.Millisecond)
	m.RecordSeed(ctx, 8)
	m.SetStoreConnected(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sourceSelections.WithLabelValues("GetIntern", "fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sourceSelections.WithLabelValues("GetLeaderboard", "store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.readFailures.WithLabelValues("GetIntern")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.seededRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeConnected))

	m.SetStoreConnected(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.storeConnected))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
