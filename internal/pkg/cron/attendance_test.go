package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/config"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweepFakeRepo covers only what the sweeper touches. Missing intern IDs are
// computed from the roster minus the recorded set, like the real query.
type sweepFakeRepo struct {
	mu      sync.Mutex
	roster  []int64
	records map[string]map[int64]attendance.Record // date -> internID -> record
	failFor map[int64]error
	nextID  int64
}

func newSweepFakeRepo(roster ...int64) *sweepFakeRepo {
	return &sweepFakeRepo{
		roster:  roster,
		records: make(map[string]map[int64]attendance.Record),
		failFor: make(map[int64]error),
		nextID:  1,
	}
}

func (f *sweepFakeRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failFor[rec.InternID]; ok {
		return attendance.Record{}, err
	}

	key := rec.Tanggal.Format("2006-01-02")
	if f.records[key] == nil {
		f.records[key] = make(map[int64]attendance.Record)
	}
	if _, exists := f.records[key][rec.InternID]; exists {
		return attendance.Record{}, attendance.ErrAlreadyRecordedToday
	}

	rec.ID = f.nextID
	f.nextID++
	f.records[key][rec.InternID] = rec
	return rec, nil
}

func (f *sweepFakeRepo) GetByInternAndDate(ctx context.Context, internID int64, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *sweepFakeRepo) SetCheckOut(ctx context.Context, id int64, jamKeluar string, pulangAwalMenit int) error {
	return nil
}

func (f *sweepFakeRepo) HistoryByIntern(ctx context.Context, internID int64) ([]attendance.Record, error) {
	return nil, nil
}

func (f *sweepFakeRepo) List(ctx context.Context) ([]attendance.Record, error) {
	return nil, nil
}

func (f *sweepFakeRepo) InternIDsWithoutRecord(ctx context.Context, date time.Time) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	recorded := f.records[date.Format("2006-01-02")]
	var missing []int64
	for _, id := range f.roster {
		if _, ok := recorded[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (f *sweepFakeRepo) recordsOn(date time.Time) map[int64]attendance.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[date.Format("2006-01-02")]
}

func testSweeperConfig() config.SweeperConfig {
	return config.SweeperConfig{
		Hour:         0,
		Target:       config.SweepTargetYesterday,
		AbsentStatus: "alpa",
	}
}

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func TestSweepDate(t *testing.T) {
	ctx := context.Background()

	t.Run("marks every intern without a record", func(t *testing.T) {
		loc := jakarta(t)
		repo := newSweepFakeRepo(1, 2, 3)
		date := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

		// Intern 2 already checked in that day.
		jamMasuk := "07:30:00"
		_, err := repo.Create(ctx, attendance.Record{
			InternID: 2, Tanggal: date, Shift: "shift1",
			JamMasuk: &jamMasuk, Status: attendance.StatusHadir,
		})
		require.NoError(t, err)

		jobs := NewAttendanceJobs(repo, testSweeperConfig(), loc)
		require.NoError(t, jobs.SweepDate(ctx, date))

		recs := repo.recordsOn(date)
		require.Len(t, recs, 3)
		assert.Equal(t, attendance.StatusHadir, recs[2].Status)
		for _, id := range []int64{1, 3} {
			assert.Equal(t, attendance.StatusAlpa, recs[id].Status)
			assert.Equal(t, attendance.SweepShift, recs[id].Shift)
			assert.Nil(t, recs[id].JamMasuk)
			assert.Nil(t, recs[id].JamKeluar)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		loc := jakarta(t)
		repo := newSweepFakeRepo(1, 2)
		date := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

		jobs := NewAttendanceJobs(repo, testSweeperConfig(), loc)
		require.NoError(t, jobs.SweepDate(ctx, date))
		require.NoError(t, jobs.SweepDate(ctx, date))

		assert.Len(t, repo.recordsOn(date), 2)
	})

	t.Run("one failing intern does not abort the sweep", func(t *testing.T) {
		loc := jakarta(t)
		repo := newSweepFakeRepo(1, 2, 3)
		repo.failFor[2] = errors.New("connection reset")
		date := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

		jobs := NewAttendanceJobs(repo, testSweeperConfig(), loc)
		require.NoError(t, jobs.SweepDate(ctx, date))

		recs := repo.recordsOn(date)
		assert.Len(t, recs, 2)
		assert.Contains(t, recs, int64(1))
		assert.Contains(t, recs, int64(3))
	})

	t.Run("respects the configured absent status", func(t *testing.T) {
		loc := jakarta(t)
		repo := newSweepFakeRepo(1)
		cfg := testSweeperConfig()
		cfg.AbsentStatus = "libur"
		date := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

		jobs := NewAttendanceJobs(repo, cfg, loc)
		require.NoError(t, jobs.SweepDate(ctx, date))

		assert.Equal(t, attendance.StatusLibur, repo.recordsOn(date)[1].Status)
	})
}

func TestMarkAbsentInterns(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps the resolved target date", func(t *testing.T) {
		loc := jakarta(t)
		repo := newSweepFakeRepo(1)

		jobs := NewAttendanceJobs(repo, testSweeperConfig(), loc)
		jobs.now = func() time.Time {
			return time.Date(2025, 3, 10, 0, 5, 0, 0, loc)
		}

		require.NoError(t, jobs.MarkAbsentInterns(ctx))
		assert.Len(t, repo.recordsOn(time.Date(2025, 3, 9, 0, 0, 0, 0, loc)), 1)
	})

	t.Run("target date resolves yesterday and today", func(t *testing.T) {
		loc := jakarta(t)
		cfg := testSweeperConfig()

		jobs := NewAttendanceJobs(newSweepFakeRepo(), cfg, loc)
		jobs.now = func() time.Time {
			return time.Date(2025, 3, 10, 0, 15, 0, 0, loc)
		}
		assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), jobs.TargetDate())

		cfg.Target = config.SweepTargetToday
		jobs = NewAttendanceJobs(newSweepFakeRepo(), cfg, loc)
		jobs.now = func() time.Time {
			return time.Date(2025, 3, 10, 23, 0, 0, 0, loc)
		}
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), jobs.TargetDate())
	})
}
