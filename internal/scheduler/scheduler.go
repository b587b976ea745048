package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/prasetyo/kasrt/internal/event"
)

var (
	sweepRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kasrt_sweep_runs_total",
		Help: "Number of expiry sweep runs.",
	})
	sweepCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kasrt_sweep_completed_total",
		Help: "Events auto-completed by the expiry sweep.",
	})
	sweepCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kasrt_sweep_cancelled_total",
		Help: "Events auto-cancelled by the expiry sweep.",
	})
	sweepFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kasrt_sweep_failures_total",
		Help: "Events the expiry sweep failed to process.",
	})
)

// Scheduler periodically runs the event expiry sweep.
type Scheduler struct {
	events   *event.Service
	interval time.Duration
}

func New(events *event.Service, interval time.Duration) *Scheduler {
	return &Scheduler{events: events, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval. The first
// sweep runs immediately so a restart does not delay overdue events by a full
// interval.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Trigger runs one sweep on demand.
func (s *Scheduler) Trigger(ctx context.Context) (event.SweepResult, error) {
	return s.runOnce(ctx)
}

func (s *Scheduler) sweep(ctx context.Context) {
	if _, err := s.runOnce(ctx); err != nil {
		slog.Error("expiry sweep failed", "error", err)
	}
}

func (s *Scheduler) runOnce(ctx context.Context) (event.SweepResult, error) {
	sweepRuns.Inc()

	result, err := s.events.RunExpirySweep(ctx)
	if err != nil {
		return result, err
	}

	sweepCompleted.Add(float64(result.Completed))
	sweepCancelled.Add(float64(result.Cancelled))
	sweepFailures.Add(float64(result.Failed))

	if result.Completed+result.Cancelled+result.Failed > 0 {
		slog.Info("expiry sweep finished",
			"completed", result.Completed,
			"cancelled", result.Cancelled,
			"failed", result.Failed,
		)
	}

	return result, nil
}
