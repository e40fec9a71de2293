package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricImportsTotal   = "neatimf.imports.total"
	metricImportDuration = "neatimf.import.duration.seconds"
	metricTriplesTotal   = "neatimf.triples.parsed.total"
	metricIssuesTotal    = "neatimf.issues.total"

	attrImporter = "importer"
	attrStatus   = "status"
	attrSeverity = "severity"
)

// Import statuses recorded on the imports counter.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// importDurationBoundaries covers milliseconds to minutes; large IMF type
// libraries can take a while to parse.
var importDurationBoundaries = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120}

// ImportMetrics holds the OTel instruments for import runs.
type ImportMetrics struct {
	importsTotal   metric.Int64Counter
	importDuration metric.Float64Histogram
	triplesTotal   metric.Int64Counter
	issuesTotal    metric.Int64Counter
}

// NewImportMetrics creates import metric instruments from the given meter.
func NewImportMetrics(mt metric.Meter) (*ImportMetrics, error) {
	imports, err := mt.Int64Counter(metricImportsTotal,
		metric.WithDescription("Total number of import runs"),
		metric.WithUnit("{import}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricImportsTotal, err)
	}

	duration, err := mt.Float64Histogram(metricImportDuration,
		metric.WithDescription("Import run duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(importDurationBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricImportDuration, err)
	}

	triples, err := mt.Int64Counter(metricTriplesTotal,
		metric.WithDescription("Total RDF triples parsed"),
		metric.WithUnit("{triple}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricTriplesTotal, err)
	}

	issuesCount, err := mt.Int64Counter(metricIssuesTotal,
		metric.WithDescription("Total issues collected during imports"),
		metric.WithUnit("{issue}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricIssuesTotal, err)
	}

	return &ImportMetrics{
		importsTotal:   imports,
		importDuration: duration,
		triplesTotal:   triples,
		issuesTotal:    issuesCount,
	}, nil
}

// RecordImport records a completed import run.
func (im *ImportMetrics) RecordImport(ctx context.Context, importer, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(attrImporter, importer),
		attribute.String(attrStatus, status),
	)

	im.importsTotal.Add(ctx, 1, attrs)
	im.importDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordTriples records the number of triples parsed from a source.
func (im *ImportMetrics) RecordTriples(ctx context.Context, importer string, count int64) {
	im.triplesTotal.Add(ctx, count, metric.WithAttributes(
		attribute.String(attrImporter, importer),
	))
}

// RecordIssues records collected issues by severity.
func (im *ImportMetrics) RecordIssues(ctx context.Context, importer, severity string, count int64) {
	if count == 0 {
		return
	}

	im.issuesTotal.Add(ctx, count, metric.WithAttributes(
		attribute.String(attrImporter, importer),
		attribute.String(attrSeverity, severity),
	))
}
