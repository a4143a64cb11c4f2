package report

import (
	"context"
	"fmt"
	"time"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	loc        *time.Location
}

func NewReportService(reportRepo report.ReportRepository, loc *time.Location) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		loc:        loc,
	}
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryReport, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryReport{}, err
	}

	var from, to *time.Time
	if req.Month != 0 && req.Year != 0 {
		periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.loc)
		periodEnd := periodStart.AddDate(0, 1, -1)
		from, to = &periodStart, &periodEnd
	}

	summaries, err := s.reportRepo.GetInternSummaries(ctx, from, to)
	if err != nil {
		return report.SummaryReport{}, fmt.Errorf("failed to build summary report: %w", err)
	}

	return report.SummaryReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: time.Now().In(s.loc).Format(time.RFC3339),
		Interns:     summaries,
	}, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyRequest) (report.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReport{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)

	daily, err := s.reportRepo.GetDailyCounts(ctx, date)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to build daily report: %w", err)
	}

	return daily, nil
}
