package personnel

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
)

type Service struct {
	personnelRepository  personnel.Repository
	departmentRepository department.Repository
	branchRepository     branch.Repository
}

func NewService(
	personnelRepository personnel.Repository,
	departmentRepository department.Repository,
	branchRepository branch.Repository,
) *Service {
	return &Service{
		personnelRepository:  personnelRepository,
		departmentRepository: departmentRepository,
		branchRepository:     branchRepository,
	}
}

func (s *Service) Create(ctx context.Context, req personnel.CreatePersonnelRequest) (personnel.Personnel, error) {
	if err := req.Validate(); err != nil {
		return personnel.Personnel{}, err
	}

	if _, err := s.departmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to get department: %w", err)
	}
	if req.BranchID != nil {
		if _, err := s.branchRepository.GetByID(ctx, *req.BranchID); err != nil {
			return personnel.Personnel{}, fmt.Errorf("failed to get branch: %w", err)
		}
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	created, err := s.personnelRepository.Create(ctx, personnel.Personnel{
		FullName:     req.FullName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		BranchID:     req.BranchID,
		Position:     req.Position,
		HireDate:     hireDate,
	})
	if err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to create personnel: %w", err)
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, req personnel.UpdatePersonnelRequest) (personnel.Personnel, error) {
	if err := req.Validate(); err != nil {
		return personnel.Personnel{}, err
	}

	p, err := s.personnelRepository.GetByID(ctx, req.ID)
	if err != nil {
		return personnel.Personnel{}, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return personnel.Personnel{}, fmt.Errorf("failed to get department: %w", err)
		}
		p.DepartmentID = *req.DepartmentID
	}
	if req.BranchID != nil {
		if _, err := s.branchRepository.GetByID(ctx, *req.BranchID); err != nil {
			return personnel.Personnel{}, fmt.Errorf("failed to get branch: %w", err)
		}
		p.BranchID = req.BranchID
	}
	if req.Position != nil {
		p.Position = req.Position
	}

	if err := s.personnelRepository.Update(ctx, p); err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to update personnel: %w", err)
	}

	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	return s.personnelRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter personnel.Filter) ([]personnel.Personnel, int64, error) {
	return s.personnelRepository.ListPaged(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.personnelRepository.Delete(ctx, id)
}
