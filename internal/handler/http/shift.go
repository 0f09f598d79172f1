package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/shift"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
	shiftsvc "github.com/peoplecore/hrm-backend-go/internal/service/shift"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	DailySchedule(w http.ResponseWriter, r *http.Request)
	MySchedule(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	service *shiftsvc.Service
}

func NewShiftHandler(service *shiftsvc.Service) ShiftHandler {
	return &ShiftHandlerImpl{service: service}
}

func (h *ShiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created successfully", created)
}

func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.service.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, shifts)
}

func (h *ShiftHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.service.UpdateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated successfully", updated)
}

func (h *ShiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

func (h *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift assigned successfully", created)
}

func (h *ShiftHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unassign(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift assignment removed", nil)
}

func (h *ShiftHandlerImpl) DailySchedule(w http.ResponseWriter, r *http.Request) {
	date, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	schedule, err := h.service.ScheduleForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}

func (h *ShiftHandlerImpl) MySchedule(w http.ResponseWriter, r *http.Request) {
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

	schedule, err := h.service.ScheduleForPersonnel(r.Context(), personnelID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}
