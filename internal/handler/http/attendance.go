package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/attendance"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/shift"
	"github.com/presensi-magang/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Shifts(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Presensi berhasil", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Presensi pulang berhasil", result)
}

// RequestLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}

	result, err := h.attendanceService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Izin berhasil dicatat", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	internID, err := strconv.ParseInt(chi.URLParam(r, "internId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID peserta tidak valid", nil)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), internID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// nil means no record yet today; the client treats that as "can check in"
	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	internID, err := strconv.ParseInt(chi.URLParam(r, "internId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID peserta tidak valid", nil)
		return
	}

	result, err := h.attendanceService.History(r.Context(), internID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Shifts returns the shift catalog so clients never hardcode the windows.
func (h *attendanceHandlerImpl) Shifts(w http.ResponseWriter, r *http.Request) {
	type shiftInfo struct {
		Key   string `json:"key"`
		Start string `json:"start"`
		End   string `json:"end"`
	}

	shifts := make([]shiftInfo, 0, len(shift.Keys()))
	for _, key := range shift.Keys() {
		s, err := shift.Parse(key)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		shifts = append(shifts, shiftInfo{
			Key:   s.Key,
			Start: s.StartClock(),
			End:   s.EndClock(),
		})
	}

	response.Success(w, shifts)
}
