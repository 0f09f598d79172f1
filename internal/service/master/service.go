package master

import (
	"context"
	"fmt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

// Service covers the reference data every other module points at: branches
// and departments.
type Service struct {
	branchRepository     branch.Repository
	departmentRepository department.Repository
}

func NewService(branchRepository branch.Repository, departmentRepository department.Repository) *Service {
	return &Service{
		branchRepository:     branchRepository,
		departmentRepository: departmentRepository,
	}
}

func (s *Service) CreateBranch(ctx context.Context, name string, address *string) (branch.Branch, error) {
	if validator.IsEmpty(name) {
		return branch.Branch{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}

	created, err := s.branchRepository.Create(ctx, branch.Branch{Name: name, Address: address})
	if err != nil {
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}
	return created, nil
}

func (s *Service) GetBranch(ctx context.Context, id string) (branch.Branch, error) {
	return s.branchRepository.GetByID(ctx, id)
}

func (s *Service) ListBranches(ctx context.Context) ([]branch.Branch, error) {
	return s.branchRepository.List(ctx)
}

func (s *Service) UpdateBranch(ctx context.Context, b branch.Branch) error {
	if validator.IsEmpty(b.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return s.branchRepository.Update(ctx, b)
}

func (s *Service) DeleteBranch(ctx context.Context, id string) error {
	return s.branchRepository.Delete(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, name string, branchID *string) (department.Department, error) {
	if validator.IsEmpty(name) {
		return department.Department{}, validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	if branchID != nil {
		if _, err := s.branchRepository.GetByID(ctx, *branchID); err != nil {
			return department.Department{}, fmt.Errorf("failed to get branch: %w", err)
		}
	}

	created, err := s.departmentRepository.Create(ctx, department.Department{Name: name, BranchID: branchID})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *Service) GetDepartment(ctx context.Context, id string) (department.Department, error) {
	return s.departmentRepository.GetByID(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepository.List(ctx)
}

func (s *Service) UpdateDepartment(ctx context.Context, d department.Department) error {
	if validator.IsEmpty(d.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return s.departmentRepository.Update(ctx, d)
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepository.Delete(ctx, id)
}
