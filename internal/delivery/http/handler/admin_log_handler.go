package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminLogHandler struct {
	adminLogUsecase usecase.AdminLogUsecase
}

func NewAdminLogHandler(adminLogUsecase usecase.AdminLogUsecase) *AdminLogHandler {
	return &AdminLogHandler{
		adminLogUsecase: adminLogUsecase,
	}
}

func (h *AdminLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	logs, err := h.adminLogUsecase.List(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to get admin logs")
		return
	}

	response.Success(w, http.StatusOK, "Admin logs retrieved successfully", logs)
}

func (h *AdminLogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid log ID", nil)
		return
	}

	entry, err := h.adminLogUsecase.GetByID(r.Context(), logID)
	if err != nil {
		switch err {
		case usecase.ErrAdminLogNotFound:
			response.NotFound(w, "Admin log not found")
		default:
			response.InternalServerError(w, "Failed to get admin log")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admin log retrieved successfully", entry)
}
