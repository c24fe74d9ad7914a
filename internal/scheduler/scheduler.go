package scheduler

import (
	"context"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/config"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"
)

// Scheduler drives the periodic sweeps. Every job re-enters the same service
// operations that actor requests use, so timer-driven transitions behave
// exactly like user-driven ones.
type Scheduler struct {
	sweeps service.ISweepService
	jobs   config.JobsConfig
	logger logger.ILogger
}

func New(sweeps service.ISweepService, jobs config.JobsConfig, log logger.ILogger) *Scheduler {
	return &Scheduler{
		sweeps: sweeps,
		jobs:   jobs,
		logger: log,
	}
}

// Start launches the sweep loops. They stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.autoCancelLoop(ctx)
	go s.dailyLoop(ctx, s.jobs.OverdueHour, "overdue", func(c context.Context) (int, error) {
		return s.sweeps.NotifyOverdue(c)
	})
	go s.dailyLoop(ctx, s.jobs.ReminderHour, "reminder", func(c context.Context) (int, error) {
		return s.sweeps.SendDailyReminders(c)
	})
	go s.monthlyLoop(ctx)

	s.logger.Info("Scheduler", "Sweep loops started", map[string]interface{}{
		"auto_cancel_minutes": s.jobs.AutoCancelEveryMinutes,
		"reminder_hour":       s.jobs.ReminderHour,
		"overdue_hour":        s.jobs.OverdueHour,
	})
}

func (s *Scheduler) autoCancelLoop(ctx context.Context) {
	interval := time.Duration(s.jobs.AutoCancelEveryMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.sweeps.AutoCancelExpired(ctx); err != nil {
				s.logger.Error("Scheduler", "Auto-cancel sweep failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}

// nextAt returns the next occurrence of the given local hour.
func nextAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) dailyLoop(ctx context.Context, hour int, name string, run func(context.Context) (int, error)) {
	for {
		wait := time.Until(nextAt(time.Now(), hour))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			count, err := run(ctx)
			if err != nil {
				s.logger.Error("Scheduler", "Daily sweep failed", map[string]interface{}{"job": name, "error": err.Error()})
				continue
			}
			s.logger.Info("Scheduler", "Daily sweep finished", map[string]interface{}{"job": name, "processed": count})
		}
	}
}

// monthlyLoop queues the previous month's activity reports shortly after
// midnight on the first of each month.
func (s *Scheduler) monthlyLoop(ctx context.Context) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), 1, 0, 30, 0, 0, now.Location()).AddDate(0, 1, 0)

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
			prev := next.AddDate(0, -1, 0)
			if _, err := s.sweeps.QueueMonthlyReports(ctx, prev.Year(), prev.Month()); err != nil {
				s.logger.Error("Scheduler", "Monthly report sweep failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}
