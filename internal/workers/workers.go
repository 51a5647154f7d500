package workers

import (
	"context"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background jobs. The check-in job is only
// scheduled when cfg.CheckInInterval is positive.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.CheckInInterval > 0 {
		w.workers = append(w.workers, NewCheckInWorker(services.CheckInService, cfg.CheckInInterval, logger))
		logger.Info().Dur("interval", cfg.CheckInInterval).Msg("check-in worker scheduled")
	}

	return w
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them return. The first
// error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
