package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	noopmetric "go.opentelemetry.io/otel/metric/noop"

	"github.com/cognitedata/neat-imf-importer/pkg/observability"
)

func TestNewImportMetrics(t *testing.T) {
	t.Parallel()

	meter := noopmetric.NewMeterProvider().Meter("test")

	metrics, err := observability.NewImportMetrics(meter)
	require.NoError(t, err)
	require.NotNil(t, metrics)

	ctx := context.Background()

	assert.NotPanics(t, func() {
		metrics.RecordImport(ctx, "imf", observability.StatusOK, 150*time.Millisecond)
		metrics.RecordImport(ctx, "imf", observability.StatusError, time.Second)
		metrics.RecordTriples(ctx, "imf", 1234)
		metrics.RecordIssues(ctx, "imf", "warning", 2)
		metrics.RecordIssues(ctx, "imf", "warning", 0)
	})
}
