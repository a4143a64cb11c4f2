package intern

import (
	"context"
	"fmt"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/report"
)

type InternServiceImpl struct {
	internRepo intern.InternRepository
	reportRepo report.ReportRepository
}

func NewInternService(
	internRepo intern.InternRepository,
	reportRepo report.ReportRepository,
) intern.InternService {
	return &InternServiceImpl{
		internRepo: internRepo,
		reportRepo: reportRepo,
	}
}

// Create implements intern.InternService.
func (s *InternServiceImpl) Create(ctx context.Context, req intern.CreateInternRequest) (intern.InternResponse, error) {
	if err := req.Validate(); err != nil {
		return intern.InternResponse{}, err
	}

	created, err := s.internRepo.Create(ctx, intern.Intern{
		Name:   req.Name,
		School: req.School,
		Status: intern.StatusActive,
	})
	if err != nil {
		return intern.InternResponse{}, fmt.Errorf("failed to create intern: %w", err)
	}

	return toResponse(created), nil
}

// Get implements intern.InternService.
func (s *InternServiceImpl) Get(ctx context.Context, id int64) (intern.InternDetailResponse, error) {
	in, err := s.internRepo.GetByID(ctx, id)
	if err != nil {
		return intern.InternDetailResponse{}, err
	}

	summary, err := s.reportRepo.GetInternSummary(ctx, id)
	if err != nil {
		return intern.InternDetailResponse{}, fmt.Errorf("failed to load intern summary: %w", err)
	}

	return intern.InternDetailResponse{
		InternResponse: toResponse(in),
		Hadir:          summary.Hadir,
		Izin:           summary.Izin,
		Alpa:           summary.Alpa,
		Total:          summary.Total,
		Percentage:     summary.Percentage,
	}, nil
}

// List implements intern.InternService.
func (s *InternServiceImpl) List(ctx context.Context) ([]intern.InternResponse, error) {
	interns, err := s.internRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}

	responses := make([]intern.InternResponse, 0, len(interns))
	for _, in := range interns {
		responses = append(responses, toResponse(in))
	}

	return responses, nil
}

// Delete implements intern.InternService. Deletion is refused while the intern
// still has attendance history (the repository surfaces the restrict
// violation as ErrHasAttendanceHistory).
func (s *InternServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.internRepo.Delete(ctx, id)
}

func toResponse(in intern.Intern) intern.InternResponse {
	return intern.InternResponse{
		ID:     in.ID,
		Name:   in.Name,
		School: in.School,
		Status: string(in.Status),
	}
}
