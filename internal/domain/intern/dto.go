package intern

import (
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// INTERN DTOs
// ========================================

type CreateInternRequest struct {
	Name   string `json:"name"`
	School string `json:"school"`
}

func (r *CreateInternRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "nama wajib diisi",
		})
	}

	if validator.IsEmpty(r.School) {
		errs = append(errs, validator.ValidationError{
			Field:   "school",
			Message: "sekolah wajib diisi",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InternResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	School string `json:"school"`
	Status string `json:"status"`
}

// InternDetailResponse carries the roster entry plus attendance counters, as
// shown on the admin intern detail page.
type InternDetailResponse struct {
	InternResponse
	Hadir      int `json:"hadir"`
	Izin       int `json:"izin"`
	Alpa       int `json:"alpa"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
