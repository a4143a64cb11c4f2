package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// dailyJob runs once per day at a fixed hour in the scheduler's zone.
type dailyJob struct {
	name string
	hour int
	fn   func(ctx context.Context) error
}

// Scheduler fires each registered job at its local hour, once a day. It
// sleeps until the next occurrence instead of polling, so a job never fires
// twice in one day and a process restart just waits for the next occurrence.
type Scheduler struct {
	loc    *time.Location
	jobs   []dailyJob
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(loc *time.Location) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		loc:    loc,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDaily registers a job to run every day at the given hour (local zone).
func (s *Scheduler) AddDaily(name string, hour int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, dailyJob{name: name, hour: hour, fn: fn})
	slog.Info("Cron job registered", "name", name, "hour", hour)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all job loops and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(job dailyJob) {
	defer s.wg.Done()

	for {
		wait := time.Until(nextRun(time.Now().In(s.loc), job.hour))
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.execute(s.ctx, job)
		}
	}
}

// nextRun returns the first time strictly after now whose hour matches. At
// exactly the scheduled instant the run moves to tomorrow; the caller is
// assumed to have just fired.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) execute(ctx context.Context, job dailyJob) {
	start := time.Now()
	if err := job.fn(ctx); err != nil {
		slog.Error("Cron job failed", "name", job.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Info("Cron job completed", "name", job.name, "duration", time.Since(start))
}

// RunOnce fires every registered job immediately, for tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.execute(ctx, job)
	}
}
