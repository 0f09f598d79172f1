package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	personnelsvc "github.com/peoplecore/hrm-backend-go/internal/service/personnel"
)

type PersonnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PersonnelHandlerImpl struct {
	service *personnelsvc.Service
}

func NewPersonnelHandler(service *personnelsvc.Service) PersonnelHandler {
	return &PersonnelHandlerImpl{service: service}
}

func (h *PersonnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created successfully", created)
}

func (h *PersonnelHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *PersonnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter personnel.Filter

	q := r.URL.Query()
	if name := q.Get("name"); name != "" {
		filter.Name = &name
	}
	if departmentID := q.Get("department_id"); departmentID != "" {
		filter.DepartmentID = &departmentID
	}
	if branchID := q.Get("branch_id"); branchID != "" {
		filter.BranchID = &branchID
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	list, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, list, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (h *PersonnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	var req personnel.UpdatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.service.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated successfully", updated)
}

func (h *PersonnelHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Personnel ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel deleted successfully", nil)
}
