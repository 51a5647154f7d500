package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
)

type checkInWorker struct {
	checkIns service.CheckInService
	interval time.Duration
	logger   *logger.Logger
}

// NewCheckInWorker returns a Worker that sends the check-in message to every
// patient once per interval. The first run happens one interval after start.
func NewCheckInWorker(checkIns service.CheckInService, interval time.Duration, logger *logger.Logger) Worker {
	return &checkInWorker{
		checkIns: checkIns,
		interval: interval,
		logger:   logger,
	}
}

func (w *checkInWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			report, err := w.checkIns.SendCheckIns(ctx)
			if err != nil {
				// a failed run is retried on the next tick
				w.logger.Err(err).Msg("check-in run failed")
				continue
			}
			w.logger.Info().Int("sent", report.Sent).Int("failed", report.Failed).Msg("check-in run finished")
		}
	}
}
