// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingWorker struct {
	started atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) error {
	w.started.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct{}

func (failingWorker) Run(context.Context) error {
	return errors.New("cannot continue")
}

type countingCheckIns struct {
	calls atomic.Int32
	err   error
}

func (c *countingCheckIns) SendCheckIns(context.Context) (models.CheckInReport, error) {
	c.calls.Add(1)
	return models.CheckInReport{Sent: 1}, c.err
}

func TestWorkers_RunUntilCancelled(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_FirstErrorStopsOthers(t *testing.T) {
	blocking := &blockingWorker{}
	ws := &Workers{workers: []Worker{blocking, failingWorker{}}}

	err := ws.Run(context.Background())

	assert.EqualError(t, err, "cannot continue")
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{CheckInService: &countingCheckIns{}}

	assert.Equal(t, 0, NewWorkers(services, config.Workers{}, logger.Nop()).Len())
	assert.Equal(t, 1, NewWorkers(services, config.Workers{CheckInInterval: time.Hour}, logger.Nop()).Len())
}

func TestCheckInWorker_RunsOnEveryTick(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "successful runs"},
		{name: "failed runs keep the worker alive", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIns := &countingCheckIns{err: tt.err}
			w := NewCheckInWorker(checkIns, 5*time.Millisecond, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			require.Eventually(t, func() bool {
				return checkIns.calls.Load() >= 2
			}, time.Second, 5*time.Millisecond)

			cancel()
			assert.NoError(t, <-done)
		})
	}
}
