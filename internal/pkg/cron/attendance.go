package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/config"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds the daily absence sweeper. Interns with no attendance
// action on the target date get a system-assigned record; the per-day unique
// constraint makes re-runs no-ops, so at-least-once scheduling is safe.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	cfg            config.SweeperConfig
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	cfg config.SweeperConfig,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDaily("mark_absent_interns", j.cfg.Hour, j.MarkAbsentInterns)
}

// MarkAbsentInterns sweeps the configured target date. The scheduler fires it
// once a day at the configured hour; the default target is yesterday, a date
// that can no longer receive check-ins, so the sweep never races live traffic.
func (j *AttendanceJobs) MarkAbsentInterns(ctx context.Context) error {
	return j.SweepDate(ctx, j.TargetDate())
}

// TargetDate resolves the configured sweep target to a concrete local date.
func (j *AttendanceJobs) TargetDate() time.Time {
	nowLocal := j.now().In(j.loc)
	target := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, j.loc)
	if j.cfg.Target == config.SweepTargetYesterday {
		target = target.AddDate(0, 0, -1)
	}
	return target
}

// SweepDate inserts an absence record for every active intern lacking one on
// the given date. One intern failing does not abort the sweep for the rest.
func (j *AttendanceJobs) SweepDate(ctx context.Context, date time.Time) error {
	slog.Info("Cron: Starting absence sweep", "date", date.Format("2006-01-02"), "status", j.cfg.AbsentStatus)

	missing, err := j.attendanceRepo.InternIDsWithoutRecord(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list interns without record: %w", err)
	}

	if len(missing) == 0 {
		slog.Info("Cron: No interns to mark absent", "date", date.Format("2006-01-02"))
		return nil
	}

	marked := 0
	for _, internID := range missing {
		rec := attendance.Record{
			InternID: internID,
			Tanggal:  date,
			Shift:    attendance.SweepShift,
			Status:   attendance.Status(j.cfg.AbsentStatus),
		}

		if _, err := j.attendanceRepo.Create(ctx, rec); err != nil {
			// A record appearing between the listing and the insert means the
			// day is already covered; anything else is logged and skipped.
			if errors.Is(err, attendance.ErrAlreadyRecordedToday) {
				continue
			}
			slog.Error("Cron: Failed to mark intern absent",
				"intern_id", internID,
				"date", date.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Absence sweep finished", "date", date.Format("2006-01-02"), "marked", marked)
	return nil
}
