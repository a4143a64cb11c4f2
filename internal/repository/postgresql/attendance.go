package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The unique constraint on
// (intern_id, tanggal) arbitrates the one-record-per-day rule; its violation
// surfaces as the domain conflict error, never as a raw storage error.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			intern_id, tanggal, shift, jam_masuk, jam_keluar,
			telat_menit, pulang_awal_menit, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.InternID,
		rec.Tanggal,
		rec.Shift,
		rec.JamMasuk,
		rec.JamKeluar,
		rec.TelatMenit,
		rec.PulangAwalMenit,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyRecordedToday
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByInternAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByInternAndDate(ctx context.Context, internID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, intern_id, tanggal, shift,
			   to_char(jam_masuk, 'HH24:MI:SS'), to_char(jam_keluar, 'HH24:MI:SS'),
			   telat_menit, pulang_awal_menit, status, created_at, updated_at
		FROM attendance
		WHERE intern_id = $1
		  AND tanggal = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, internID, date).Scan(
		&rec.ID, &rec.InternID, &rec.Tanggal, &rec.Shift,
		&rec.JamMasuk, &rec.JamKeluar,
		&rec.TelatMenit, &rec.PulangAwalMenit, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by intern and date: %w", err)
	}

	return &rec, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id int64, jamKeluar string, pulangAwalMenit int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET jam_keluar = $2, pulang_awal_menit = $3, updated_at = NOW()
		WHERE id = $1 AND jam_keluar IS NULL
		RETURNING id
	`

	var updatedID int64
	if err := q.QueryRow(ctx, query, id, jamKeluar, pulangAwalMenit).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedOut
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}

	return nil
}

// HistoryByIntern implements attendance.AttendanceRepository.
func (r *attendanceRepository) HistoryByIntern(ctx context.Context, internID int64) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, intern_id, tanggal, shift,
			   to_char(jam_masuk, 'HH24:MI:SS'), to_char(jam_keluar, 'HH24:MI:SS'),
			   telat_menit, pulang_awal_menit, status, created_at, updated_at
		FROM attendance
		WHERE intern_id = $1
		ORDER BY tanggal DESC
	`

	rows, err := q.Query(ctx, query, internID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.InternID, &rec.Tanggal, &rec.Shift,
			&rec.JamMasuk, &rec.JamKeluar,
			&rec.TelatMenit, &rec.PulangAwalMenit, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.intern_id, a.tanggal, a.shift,
			   to_char(a.jam_masuk, 'HH24:MI:SS'), to_char(a.jam_keluar, 'HH24:MI:SS'),
			   a.telat_menit, a.pulang_awal_menit, a.status, a.created_at, a.updated_at,
			   i.name AS intern_name
		FROM attendance a
		LEFT JOIN interns i ON i.id = a.intern_id
		ORDER BY a.tanggal DESC, a.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.InternID, &rec.Tanggal, &rec.Shift,
			&rec.JamMasuk, &rec.JamKeluar,
			&rec.TelatMenit, &rec.PulangAwalMenit, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.InternName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// InternIDsWithoutRecord implements attendance.AttendanceRepository.
func (r *attendanceRepository) InternIDsWithoutRecord(ctx context.Context, date time.Time) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id
		FROM interns i
		WHERE i.status = 'aktif'
		  AND NOT EXISTS (
			SELECT 1 FROM attendance a
			WHERE a.intern_id = i.id AND a.tanggal = $1
		  )
		ORDER BY i.id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query interns without record: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan intern id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
