package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	internRepo     intern.InternRepository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	internRepo intern.InternRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		internRepo:     internRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// NewAttendanceServiceWithClock wires a fixed clock, for tests.
func NewAttendanceServiceWithClock(
	attendanceRepo attendance.AttendanceRepository,
	internRepo intern.InternRepository,
	loc *time.Location,
	now func() time.Time,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		internRepo:     internRepo,
		loc:            loc,
		now:            now,
	}
}

// localNow returns the current wall-clock in the configured zone, plus the
// date (midnight-truncated) and clock string derived from it. Every date
// computation goes through here; the system clock's own zone never leaks in.
func (a *AttendanceServiceImpl) localNow() (date time.Time, clock string) {
	nowLocal := a.now().In(a.loc)
	date = time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, a.loc)
	clock = nowLocal.Format("15:04:05")
	return date, clock
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	sh, err := shift.Parse(req.Shift)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.internRepo.GetByID(ctx, req.InternID); err != nil {
		return attendance.RecordResponse{}, err
	}

	today, clock := a.localNow()
	jamMasuk := clock

	rec := attendance.Record{
		InternID:        req.InternID,
		Tanggal:         today,
		Shift:           sh.Key,
		JamMasuk:        &jamMasuk,
		TelatMenit:      sh.LateMinutes(clock),
		PulangAwalMenit: 0,
		Status:          attendance.StatusHadir,
	}

	// The insert is the arbiter of the one-record-per-day rule: the repository
	// converts the unique-constraint violation to ErrAlreadyRecordedToday, so
	// two racing check-ins cannot both succeed.
	created, err := a.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	today, clock := a.localNow()

	rec, err := a.attendanceRepo.GetByInternAndDate(ctx, req.InternID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil || rec.Status != attendance.StatusHadir {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.JamKeluar != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	sh, err := shift.Parse(rec.Shift)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("stored record has unknown shift: %w", err)
	}

	// Checkout after shift end is recorded as shift end; the record stays
	// shift-bounded and overtime is not tracked.
	jamKeluar := sh.ClampCheckOut(clock)
	pulangAwal := sh.EarlyLeaveMinutes(clock)

	if err := a.attendanceRepo.SetCheckOut(ctx, rec.ID, jamKeluar, pulangAwal); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec.JamKeluar = &jamKeluar
	rec.PulangAwalMenit = pulangAwal

	return attendance.ToResponse(*rec), nil
}

// RequestLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RequestLeave(ctx context.Context, req attendance.LeaveRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	sh, err := shift.Parse(req.Shift)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.internRepo.GetByID(ctx, req.InternID); err != nil {
		return attendance.RecordResponse{}, err
	}

	today, _ := a.localNow()

	rec := attendance.Record{
		InternID:        req.InternID,
		Tanggal:         today,
		Shift:           sh.Key,
		TelatMenit:      0,
		PulangAwalMenit: 0,
		Status:          attendance.StatusIzin,
	}

	created, err := a.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, internID int64) (*attendance.RecordResponse, error) {
	today, _ := a.localNow()

	rec, err := a.attendanceRepo.GetByInternAndDate(ctx, internID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*rec)
	return &resp, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, internID int64) ([]attendance.RecordResponse, error) {
	records, err := a.attendanceRepo.HistoryByIntern(ctx, internID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance history: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := a.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return responses, nil
}
