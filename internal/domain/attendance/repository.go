package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. A unique-constraint violation on
	// (intern_id, tanggal) is returned as ErrAlreadyRecordedToday; the insert
	// itself arbitrates the one-record-per-day rule.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByInternAndDate retrieves the record for one intern on one date, or
	// nil when none exists.
	GetByInternAndDate(ctx context.Context, internID int64, date time.Time) (*Record, error)

	// SetCheckOut fills jam_keluar and pulang_awal_menit on an open record.
	SetCheckOut(ctx context.Context, id int64, jamKeluar string, pulangAwalMenit int) error

	// HistoryByIntern retrieves all records for an intern, newest date first.
	HistoryByIntern(ctx context.Context, internID int64) ([]Record, error)

	// List retrieves all records with intern names, newest date first.
	List(ctx context.Context) ([]Record, error)

	// InternIDsWithoutRecord returns active interns lacking a record on the
	// given date, for the absence sweep.
	InternIDsWithoutRecord(ctx context.Context, date time.Time) ([]int64, error)
}
