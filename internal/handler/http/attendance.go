package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
	attendancesvc "github.com/peoplecore/hrm-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	GenerateQR(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	DailyRecords(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	service *attendancesvc.Service
}

func NewAttendanceHandler(service *attendancesvc.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{service: service}
}

// GenerateQR returns the QR image directly when ?format=png is set, otherwise
// the token payload as JSON.
func (h *AttendanceHandlerImpl) GenerateQR(w http.ResponseWriter, r *http.Request) {
	branchID := r.URL.Query().Get("branch_id")
	if branchID == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	code, err := h.service.GenerateQR(r.Context(), branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(code.ImagePNG)))
		w.WriteHeader(http.StatusOK)
		w.Write(code.ImagePNG)
		return
	}

	response.Success(w, map[string]interface{}{
		"branch_id":  code.BranchID,
		"token":      code.Token,
		"expires_at": code.ExpiresAt,
	})
}

func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	personnelID := middleware.PersonnelID(r)
	if personnelID == "" {
		response.BadRequest(w, "No personnel record linked to this account", nil)
		return
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		response.BadRequest(w, "QR token is required", nil)
		return
	}

	record, err := h.service.CheckIn(r.Context(), personnelID, req.Token)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in successfully", record)
}

func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	personnelID := middleware.PersonnelID(r)
	if personnelID == "" {
		response.BadRequest(w, "No personnel record linked to this account", nil)
		return
	}

	record, err := h.service.CheckOut(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out successfully", record)
}

func (h *AttendanceHandlerImpl) DailyRecords(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	records, err := h.service.DailyRecords(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *AttendanceHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	personnelID := middleware.PersonnelID(r)
	if personnelID == "" {
		response.BadRequest(w, "No personnel record linked to this account", nil)
		return
	}

	from, okFrom := validator.IsValidDate(r.URL.Query().Get("from"))
	to, okTo := validator.IsValidDate(r.URL.Query().Get("to"))
	if !okFrom || !okTo {
		response.BadRequest(w, "From and to must be in YYYY-MM-DD format", nil)
		return
	}

	records, err := h.service.PersonnelRecords(r.Context(), personnelID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
