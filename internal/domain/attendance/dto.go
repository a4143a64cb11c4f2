package attendance

import (
	"github.com/presensi-magang/attendance-backend-go/internal/domain/shift"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	InternID int64  `json:"intern_id"`
	Shift    string `json:"shift"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InternID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "intern_id",
			Message: "intern_id wajib diisi",
		})
	}

	if validator.IsEmpty(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift wajib diisi",
		})
	} else if !validator.IsInSlice(r.Shift, shift.Keys()) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift tidak dikenal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	InternID int64 `json:"intern_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InternID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "intern_id",
			Message: "intern_id wajib diisi",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequest creates an izin record for today; the shift names the window
// the intern would have worked.
type LeaveRequest struct {
	InternID int64  `json:"intern_id"`
	Shift    string `json:"shift"`
}

func (r *LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InternID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "intern_id",
			Message: "intern_id wajib diisi",
		})
	}

	if validator.IsEmpty(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift wajib diisi",
		})
	} else if !validator.IsInSlice(r.Shift, shift.Keys()) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift tidak dikenal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID              int64   `json:"id"`
	InternID        int64   `json:"intern_id"`
	InternName      *string `json:"intern_name,omitempty"`
	Tanggal         string  `json:"tanggal"` // YYYY-MM-DD
	Shift           string  `json:"shift"`
	JamMasuk        *string `json:"jam_masuk"`
	JamKeluar       *string `json:"jam_keluar"`
	TelatMenit      int     `json:"telat_menit"`
	PulangAwalMenit int     `json:"pulang_awal_menit"`
	Status          string  `json:"status"`
}

// ToResponse converts a Record entity to its wire shape.
func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:              rec.ID,
		InternID:        rec.InternID,
		InternName:      rec.InternName,
		Tanggal:         rec.Tanggal.Format("2006-01-02"),
		Shift:           rec.Shift,
		JamMasuk:        rec.JamMasuk,
		JamKeluar:       rec.JamKeluar,
		TelatMenit:      rec.TelatMenit,
		PulangAwalMenit: rec.PulangAwalMenit,
		Status:          string(rec.Status),
	}
}
