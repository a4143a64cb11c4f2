package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/domain/intern"
	"github.com/presensi-magang/attendance-backend-go/internal/handler/http/response"
)

type InternHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type internHandlerImpl struct {
	internService intern.InternService
}

func NewInternHandler(internService intern.InternService) InternHandler {
	return &internHandlerImpl{
		internService: internService,
	}
}

// Create implements InternHandler.
func (h *internHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req intern.CreateInternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Format request tidak valid", nil)
		return
	}

	result, err := h.internService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Peserta berhasil ditambahkan", result)
}

// Get implements InternHandler.
func (h *internHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID peserta tidak valid", nil)
		return
	}

	result, err := h.internService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements InternHandler.
func (h *internHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.internService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements InternHandler.
func (h *internHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID peserta tidak valid", nil)
		return
	}

	if err := h.internService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Peserta berhasil dihapus", nil)
}
