package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"weather-station/internal/services/station"
	"weather-station/internal/things"
	"weather-station/pkg/observe"
)

// Scheduler drives each thing's poll cycle on a fixed cadence. Cycles run
// sequentially per thing; stopping the scheduler cancels any cycle that is
// still in flight.
type Scheduler struct {
	scheduler *gocron.Scheduler
	registry  *things.Registry
	interval  time.Duration
	l         *observe.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func New(ctx context.Context, registry *things.Registry, interval time.Duration, l *observe.Logger) *Scheduler {
	runCtx, cancel := context.WithCancel(ctx)

	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		registry:  registry,
		interval:  interval,
		l:         l,
		ctx:       runCtx,
		cancel:    cancel,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.registry.All()) == 0 {
		s.l.Warning("no things registered; nothing to schedule")
		return nil
	}

	seconds := int(s.interval.Seconds())
	if seconds <= 0 {
		seconds = 300
	}

	_, err := s.scheduler.Every(seconds).Seconds().Do(s.runCycle)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runCycle() {
	for _, t := range s.registry.All() {
		outcome, err := t.Refresh(s.ctx)
		if outcome == station.OutcomeCancelled {
			s.l.Warning("poll cycle cancelled", map[string]any{
				"thing": t.Describe().Name,
				"err":   err,
			})
			return
		}

		s.l.Debug("poll cycle finished", map[string]any{
			"thing":   t.Describe().Name,
			"outcome": outcome.String(),
		})
	}
}

// Stop cancels any in-flight cycle and stops the scheduler.
func (s *Scheduler) Stop() {
	s.cancel()
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
