package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo enforces the (intern_id, tanggal) unique constraint under
// a mutex, mirroring what the database guarantees.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	nextID  int64
	records []attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.records {
		if existing.InternID == rec.InternID && dateKey(existing.Tanggal) == dateKey(rec.Tanggal) {
			return attendance.Record{}, attendance.ErrAlreadyRecordedToday
		}
	}

	rec.ID = f.nextID
	f.nextID++
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByInternAndDate(ctx context.Context, internID int64, date time.Time) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].InternID == internID && dateKey(f.records[i].Tanggal) == dateKey(date) {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id int64, jamKeluar string, pulangAwalMenit int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.records {
		if f.records[i].ID == id {
			if f.records[i].JamKeluar != nil {
				return attendance.ErrAlreadyCheckedOut
			}
			f.records[i].JamKeluar = &jamKeluar
			f.records[i].PulangAwalMenit = pulangAwalMenit
			return nil
		}
	}
	return attendance.ErrAlreadyCheckedOut
}

func (f *fakeAttendanceRepo) HistoryByIntern(ctx context.Context, internID int64) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []attendance.Record
	for _, rec := range f.records {
		if rec.InternID == internID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]attendance.Record(nil), f.records...), nil
}

func (f *fakeAttendanceRepo) InternIDsWithoutRecord(ctx context.Context, date time.Time) ([]int64, error) {
	return nil, nil
}

type fakeInternRepo struct {
	interns map[int64]intern.Intern
}

func newFakeInternRepo(ids ...int64) *fakeInternRepo {
	f := &fakeInternRepo{interns: make(map[int64]intern.Intern)}
	for _, id := range ids {
		f.interns[id] = intern.Intern{ID: id, Name: "Test", School: "SMK 1", Status: intern.StatusActive}
	}
	return f
}

func (f *fakeInternRepo) Create(ctx context.Context, in intern.Intern) (intern.Intern, error) {
	f.interns[in.ID] = in
	return in, nil
}

func (f *fakeInternRepo) GetByID(ctx context.Context, id int64) (intern.Intern, error) {
	in, ok := f.interns[id]
	if !ok {
		return intern.Intern{}, intern.ErrInternNotFound
	}
	return in, nil
}

func (f *fakeInternRepo) List(ctx context.Context) ([]intern.Intern, error) {
	return nil, nil
}

func (f *fakeInternRepo) Delete(ctx context.Context, id int64) error {
	delete(f.interns, id)
	return nil
}

func fixedClock(t *testing.T, value string) (func() time.Time, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, loc)
	require.NoError(t, err)
	return func() time.Time { return parsed }, loc
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("records lateness against the shift start", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:45:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)

		assert.Equal(t, "2025-03-10", result.Tanggal)
		assert.Equal(t, "shift1", result.Shift)
		require.NotNil(t, result.JamMasuk)
		assert.Equal(t, "07:45:00", *result.JamMasuk)
		assert.Equal(t, 15, result.TelatMenit)
		assert.Equal(t, "hadir", result.Status)
		assert.Nil(t, result.JamKeluar)
	})

	t.Run("on-time check-in has zero lateness", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:20:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.TelatMenit)
	})

	t.Run("rejects unknown shift", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 08:00:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift9"})
		require.Error(t, err)
	})

	t.Run("rejects unknown intern", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 08:00:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(), loc, now)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 42, Shift: "shift1"})
		assert.ErrorIs(t, err, intern.ErrInternNotFound)
	})

	t.Run("second check-in on the same day conflicts", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:45:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift2"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyRecordedToday)
	})

	t.Run("concurrent check-ins produce exactly one record", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:45:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		const workers = 20
		var wg sync.WaitGroup
		results := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		successes := 0
		conflicts := 0
		for err := range results {
			if err == nil {
				successes++
			} else {
				assert.ErrorIs(t, err, attendance.ErrAlreadyRecordedToday)
				conflicts++
			}
		}

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, conflicts)
		assert.Len(t, repo.records, 1)
	})

	t.Run("lateness is capped at the shift duration", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 23:50:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)
		assert.Equal(t, shift.Shift1.Duration(), result.TelatMenit)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	checkIn := func(t *testing.T, repo *fakeAttendanceRepo, loc *time.Location, clockIn string, shiftKey string) {
		t.Helper()
		now, _ := fixedClock(t, clockIn)
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: shiftKey})
		require.NoError(t, err)
	}

	t.Run("early leave minutes recorded", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		_, loc := fixedClock(t, "2025-03-10 07:30:00")
		checkIn(t, repo, loc, "2025-03-10 07:30:00", "shift1")

		now, _ := fixedClock(t, "2025-03-10 13:00:00")
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		require.NoError(t, err)
		require.NotNil(t, result.JamKeluar)
		assert.Equal(t, "13:00:00", *result.JamKeluar)
		assert.Equal(t, 30, result.PulangAwalMenit)
	})

	t.Run("late checkout is clamped to shift end", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		_, loc := fixedClock(t, "2025-03-10 08:00:00")
		checkIn(t, repo, loc, "2025-03-10 08:00:00", "piket")

		now, _ := fixedClock(t, "2025-03-10 16:30:00")
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		require.NoError(t, err)
		require.NotNil(t, result.JamKeluar)
		assert.Equal(t, "16:00:00", *result.JamKeluar)
		assert.Equal(t, 0, result.PulangAwalMenit)
	})

	t.Run("fails without a check-in", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		now, loc := fixedClock(t, "2025-03-10 13:00:00")
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("fails on an izin day", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		now, loc := fixedClock(t, "2025-03-10 13:00:00")
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.RequestLeave(ctx, attendance.LeaveRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)

		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("double checkout fails", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		_, loc := fixedClock(t, "2025-03-10 07:30:00")
		checkIn(t, repo, loc, "2025-03-10 07:30:00", "shift1")

		now, _ := fixedClock(t, "2025-03-10 13:30:00")
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		require.NoError(t, err)

		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{InternID: 1})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})
}

func TestRequestLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an izin record without times", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:00:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		result, err := svc.RequestLeave(ctx, attendance.LeaveRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)

		assert.Equal(t, "izin", result.Status)
		assert.Nil(t, result.JamMasuk)
		assert.Nil(t, result.JamKeluar)
		assert.Equal(t, 0, result.TelatMenit)
		assert.Equal(t, 0, result.PulangAwalMenit)
	})

	t.Run("conflicts after a check-in the same day", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 07:45:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift1"})
		require.NoError(t, err)

		_, err = svc.RequestLeave(ctx, attendance.LeaveRequest{InternID: 1, Shift: "shift1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyRecordedToday)
	})
}

func TestToday(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil when nothing is recorded", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 09:00:00")
		svc := NewAttendanceServiceWithClock(newFakeAttendanceRepo(), newFakeInternRepo(1), loc, now)

		result, err := svc.Today(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("returns today's record after check-in", func(t *testing.T) {
		now, loc := fixedClock(t, "2025-03-10 09:00:00")
		repo := newFakeAttendanceRepo()
		svc := NewAttendanceServiceWithClock(repo, newFakeInternRepo(1), loc, now)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{InternID: 1, Shift: "shift2"})
		require.NoError(t, err)

		result, err := svc.Today(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "shift2", result.Shift)
	})
}
