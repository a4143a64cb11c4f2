package response

import (
	"errors"
	"net/http"

	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/auth"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/shift"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Data tidak lengkap", validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyRecordedToday):
		Conflict(w, attendance.ErrAlreadyRecordedToday.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, attendance.ErrNotCheckedIn.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, attendance.ErrAlreadyCheckedOut.Error(), nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, attendance.ErrRecordNotFound.Error())
	case errors.Is(err, shift.ErrUnknownShift):
		BadRequest(w, shift.ErrUnknownShift.Error(), nil)

	// Intern domain errors
	case errors.Is(err, intern.ErrInternNotFound):
		NotFound(w, intern.ErrInternNotFound.Error())
	case errors.Is(err, intern.ErrHasAttendanceHistory):
		Conflict(w, intern.ErrHasAttendanceHistory.Error())

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, auth.ErrInvalidToken.Error())
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, auth.ErrAdminPrivilegeRequired.Error())

	// Default
	default:
		InternalServerError(w, "Terjadi kesalahan pada server")
	}
}
