package report

import (
	"fmt"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SUMMARY REPORT (per intern)
// ========================================

type SummaryRequest struct {
	Month int `json:"month"` // 0 = all time
	Year  int `json:"year"`  // 0 = all time
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Month == 0) != (r.Year == 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month dan year harus diisi bersama",
		})
	}

	if r.Month != 0 && (r.Month < 1 || r.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month harus antara 1 dan 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year != 0 && (r.Year < 2020 || r.Year > currentYear+1) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year harus antara 2020 dan %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InternSummary is the attendance tally for one intern. Percentage is the
// share of hadir days over all recorded days, rounded to a whole percent.
type InternSummary struct {
	InternID   int64  `json:"intern_id"`
	Name       string `json:"name"`
	School     string `json:"school"`
	Hadir      int    `json:"hadir"`
	Izin       int    `json:"izin"`
	Alpa       int    `json:"alpa"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

type SummaryReport struct {
	PeriodMonth int             `json:"period_month,omitempty"`
	PeriodYear  int             `json:"period_year,omitempty"`
	GeneratedAt string          `json:"generated_at"`
	Interns     []InternSummary `json:"interns"`
}

// ========================================
// DAILY REPORT (per date)
// ========================================

type DailyRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

func (r *DailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date wajib diisi",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date harus berformat YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyReport struct {
	Date    string `json:"date"`
	Hadir   int    `json:"hadir"`
	Izin    int    `json:"izin"`
	Alpa    int    `json:"alpa"`
	Total   int    `json:"total"`
	Roster  int    `json:"roster"`   // active interns that day
	Missing int    `json:"missing"`  // roster members without any record
}
