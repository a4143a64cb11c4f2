package postgresql

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/report"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetInternSummaries implements report.ReportRepository.
func (r *reportRepositoryImpl) GetInternSummaries(ctx context.Context, from, to *time.Time) ([]report.InternSummary, error) {
	q := GetQuerier(ctx, r.db)

	join := "LEFT JOIN attendance a ON a.intern_id = i.id"
	args := []interface{}{}
	if from != nil && to != nil {
		join += " AND a.tanggal >= $1 AND a.tanggal <= $2"
		args = append(args, *from, *to)
	}

	query := fmt.Sprintf(`
		SELECT
			i.id,
			i.name,
			i.school,
			COUNT(*) FILTER (WHERE a.status = 'hadir')            AS hadir,
			COUNT(*) FILTER (WHERE a.status = 'izin')             AS izin,
			COUNT(*) FILTER (WHERE a.status IN ('alpa', 'libur')) AS alpa,
			COUNT(a.id)                                           AS total
		FROM interns i
		%s
		GROUP BY i.id, i.name, i.school
		ORDER BY i.name ASC
	`, join)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query intern summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]report.InternSummary, 0)
	for rows.Next() {
		var s report.InternSummary
		if err := rows.Scan(&s.InternID, &s.Name, &s.School, &s.Hadir, &s.Izin, &s.Alpa, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan intern summary: %w", err)
		}
		s.Percentage = attendancePercentage(s.Hadir, s.Total)
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// GetInternSummary implements report.ReportRepository.
func (r *reportRepositoryImpl) GetInternSummary(ctx context.Context, internID int64) (report.InternSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			i.id,
			i.name,
			i.school,
			COUNT(*) FILTER (WHERE a.status = 'hadir')            AS hadir,
			COUNT(*) FILTER (WHERE a.status = 'izin')             AS izin,
			COUNT(*) FILTER (WHERE a.status IN ('alpa', 'libur')) AS alpa,
			COUNT(a.id)                                           AS total
		FROM interns i
		LEFT JOIN attendance a ON a.intern_id = i.id
		WHERE i.id = $1
		GROUP BY i.id, i.name, i.school
	`

	var s report.InternSummary
	err := q.QueryRow(ctx, query, internID).Scan(
		&s.InternID, &s.Name, &s.School, &s.Hadir, &s.Izin, &s.Alpa, &s.Total,
	)
	if err != nil {
		return report.InternSummary{}, fmt.Errorf("failed to query intern summary: %w", err)
	}
	s.Percentage = attendancePercentage(s.Hadir, s.Total)

	return s, nil
}

// GetDailyCounts implements report.ReportRepository.
func (r *reportRepositoryImpl) GetDailyCounts(ctx context.Context, date time.Time) (report.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status = 'hadir')            AS hadir,
			COUNT(*) FILTER (WHERE a.status = 'izin')             AS izin,
			COUNT(*) FILTER (WHERE a.status IN ('alpa', 'libur')) AS alpa,
			COUNT(a.id)                                           AS total,
			(SELECT COUNT(*) FROM interns WHERE status = 'aktif') AS roster
		FROM attendance a
		WHERE a.tanggal = $1
	`

	rep := report.DailyReport{Date: date.Format("2006-01-02")}
	err := q.QueryRow(ctx, query, date).Scan(&rep.Hadir, &rep.Izin, &rep.Alpa, &rep.Total, &rep.Roster)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to query daily counts: %w", err)
	}

	rep.Missing = rep.Roster - rep.Total
	if rep.Missing < 0 {
		rep.Missing = 0
	}

	return rep, nil
}

func attendancePercentage(hadir, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(hadir) / float64(total) * 100))
}
