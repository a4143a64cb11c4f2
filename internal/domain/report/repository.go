package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// GetInternSummaries tallies records per intern. A nil period covers all
	// time; otherwise from and to bound the tanggal range inclusively.
	GetInternSummaries(ctx context.Context, from, to *time.Time) ([]InternSummary, error)

	// GetInternSummary tallies records for a single intern over all time.
	GetInternSummary(ctx context.Context, internID int64) (InternSummary, error)

	// GetDailyCounts tallies records by status for one date.
	GetDailyCounts(ctx context.Context, date time.Time) (DailyReport, error)
}
