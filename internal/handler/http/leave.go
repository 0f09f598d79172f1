package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	leavesvc "github.com/peoplecore/hrm-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	Submit(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListPersonnelRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)

	GetBalance(w http.ResponseWriter, r *http.Request)
	GetCoverage(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	CheckConflicts(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	typeService       *leavesvc.TypeService
	requestService    *leavesvc.RequestService
	balanceService    *leavesvc.BalanceService
	coverageService   *leavesvc.CoverageService
	validationService *leavesvc.ValidationService
}

func NewLeaveHandler(
	typeService *leavesvc.TypeService,
	requestService *leavesvc.RequestService,
	balanceService *leavesvc.BalanceService,
	coverageService *leavesvc.CoverageService,
	validationService *leavesvc.ValidationService,
) LeaveHandler {
	return &LeaveHandlerImpl{
		typeService:       typeService,
		requestService:    requestService,
		balanceService:    balanceService,
		coverageService:   coverageService,
		validationService: validationService,
	}
}

func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, types)
}

func (h *LeaveHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	t, err := h.typeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.typeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created successfully", created)
}

func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.typeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave type updated successfully", updated)
}

func (h *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := h.typeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Employees submit for themselves; the body may omit personnel_id.
	if req.PersonnelID == "" {
		req.PersonnelID = middleware.PersonnelID(r)
	}

	created, err := h.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", created)
}

func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	personnelID := middleware.PersonnelID(r)
	if personnelID == "" {
		response.BadRequest(w, "No personnel record linked to this account", nil)
		return
	}

	requests, err := h.requestService.ListForPersonnel(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) ListPersonnelRequests(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "personnelID")
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	requests, err := h.requestService.ListForPersonnel(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListPendingRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, request)
}

func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := leave.ApproveRequest{
		LeaveRequestID: chi.URLParam(r, "id"),
		ApproverID:     middleware.UserID(r),
	}

	approved, err := h.requestService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", approved)
}

func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LeaveRequestID = chi.URLParam(r, "id")
	req.ApproverID = middleware.UserID(r)

	rejected, err := h.requestService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", rejected)
}

func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	personnelID := r.URL.Query().Get("personnel_id")
	if personnelID == "" {
		personnelID = middleware.PersonnelID(r)
	}
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		year = parsed
	}

	summary, err := h.balanceService.ComputeBalance(r.Context(), personnelID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func (h *LeaveHandlerImpl) GetCoverage(w http.ResponseWriter, r *http.Request) {
	q := leave.CoverageQuery{
		DepartmentID: r.URL.Query().Get("department_id"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}
	if err := q.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, end := q.Dates()
	summary, err := h.coverageService.ComputeCoverage(r.Context(), q.DepartmentID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func (h *LeaveHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req leave.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.PersonnelID == "" {
		req.PersonnelID = middleware.PersonnelID(r)
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, end := req.Dates()
	result, err := h.validationService.Validate(r.Context(), req.PersonnelID, req.LeaveTypeID, start, end, req.ExcludeRequestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *LeaveHandlerImpl) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	report, err := h.requestService.CheckConflicts(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
