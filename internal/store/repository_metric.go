package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

// metricRepository is the PostgreSQL-backed implementation of [MetricRepository].
type metricRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMetricRepository(db *DB, logger *logger.Logger) MetricRepository {
	logger.Debug().Msg("creating metric repository")
	return &metricRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMetrics inserts all metrics in a single statement. No metrics is a no-op.
func (r *metricRepository) SaveMetrics(ctx context.Context, patientID int64, metrics ...models.ExtractedMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	query, args, err := buildSaveMetricsQuery(patientID, metrics)
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*metricRepository.SaveMetrics").Int64("patient_id", patientID).Msg("failed to save metrics")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *metricRepository) ListMetrics(ctx context.Context, patientID int64) ([]models.Metric, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMetricsQuery(patientID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metricRepository.ListMetrics").Int64("patient_id", patientID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metrics := make([]models.Metric, 0)
	for rows.Next() {
		metric, err := scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metrics, nil
}
