package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	mastersvc "github.com/peoplecore/hrm-backend-go/internal/service/master"
	reportsvc "github.com/peoplecore/hrm-backend-go/internal/service/report"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	DepartmentLeaveUsage(w http.ResponseWriter, r *http.Request)
	DepartmentLeaveUsagePDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	service       *reportsvc.Service
	masterService *mastersvc.Service
}

func NewReportHandler(service *reportsvc.Service, masterService *mastersvc.Service) ReportHandler {
	return &ReportHandlerImpl{service: service, masterService: masterService}
}

func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	personnelID := r.URL.Query().Get("personnel_id")
	if personnelID == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	year, month, ok := yearMonth(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numbers, month between 1 and 12", nil)
		return
	}

	summary, err := h.service.MonthlyAttendance(r.Context(), personnelID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func (h *ReportHandlerImpl) DepartmentLeaveUsage(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}

	report, err := h.service.DepartmentLeaveUsage(r.Context(), departmentID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

func (h *ReportHandlerImpl) DepartmentLeaveUsagePDF(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}

	department, err := h.masterService.GetDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.service.DepartmentLeaveUsage(r.Context(), departmentID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pdf, err := h.service.RenderLeaveUsagePDF(report, department.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="leave-usage-%s-%d.pdf"`, departmentID, year))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}

func yearMonth(r *http.Request) (year, month int, ok bool) {
	year, ok = yearParam(r)
	if !ok {
		return 0, 0, false
	}

	now := time.Now()
	month = int(now.Month())
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, false
		}
		month = parsed
	}
	return year, month, true
}
