package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
	mastersvc "github.com/peoplecore/hrm-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateBranch(w http.ResponseWriter, r *http.Request)
	GetBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	DeleteBranch(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	service *mastersvc.Service
}

func NewMasterHandler(service *mastersvc.Service) MasterHandler {
	return &MasterHandlerImpl{service: service}
}

type branchPayload struct {
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

func (h *MasterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branchPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.CreateBranch(r.Context(), req.Name, req.Address)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Branch created successfully", created)
}

func (h *MasterHandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBranch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, b)
}

func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, branches)
}

func (h *MasterHandlerImpl) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	var req branchPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	b := branch.Branch{
		ID:      chi.URLParam(r, "id"),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := h.service.UpdateBranch(r.Context(), b); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Branch updated successfully", b)
}

func (h *MasterHandlerImpl) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBranch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Branch deleted successfully", nil)
}

type departmentPayload struct {
	Name     string  `json:"name"`
	BranchID *string `json:"branch_id,omitempty"`
}

func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req departmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.service.CreateDepartment(r.Context(), req.Name, req.BranchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", created)
}

func (h *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, d)
}

func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req departmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	d := department.Department{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		BranchID: req.BranchID,
	}
	if err := h.service.UpdateDepartment(r.Context(), d); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", d)
}

func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
