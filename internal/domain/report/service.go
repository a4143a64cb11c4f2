package report

import "context"

// ReportService defines read-side projections over attendance data.
type ReportService interface {
	// Summary builds the per-intern tally, optionally bounded to one month.
	Summary(ctx context.Context, req SummaryRequest) (SummaryReport, error)

	// Daily builds the status counts for one date.
	Daily(ctx context.Context, req DailyRequest) (DailyReport, error)
}
