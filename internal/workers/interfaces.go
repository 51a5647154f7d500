// Package workers runs the background jobs of the server.
//
// Each job implements Worker. Workers runs all of them until the context
// passed to Run is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and returns
// a non-nil error only when the job cannot continue.
//
// Example implementation:
//
//	type pingWorker struct{ interval time.Duration }
//
//	func (w *pingWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
