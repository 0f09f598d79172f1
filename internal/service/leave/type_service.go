package leave

import (
	"context"
	"fmt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

type TypeService struct {
	leave.TypeRepository
}

func NewTypeService(typeRepository leave.TypeRepository) *TypeService {
	return &TypeService{TypeRepository: typeRepository}
}

func (s *TypeService) Create(ctx context.Context, req leave.CreateTypeRequest) (leave.Type, error) {
	if err := req.Validate(); err != nil {
		return leave.Type{}, err
	}

	t := leave.Type{
		Name:              req.Name,
		MaxDaysPerYear:    req.MaxDaysPerYear,
		CarryOverEligible: req.CarryOverEligible,
	}

	created, err := s.TypeRepository.Create(ctx, t)
	if err != nil {
		return leave.Type{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *TypeService) Update(ctx context.Context, req leave.UpdateTypeRequest) (leave.Type, error) {
	if err := req.Validate(); err != nil {
		return leave.Type{}, err
	}

	t, err := s.TypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Type{}, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.MaxDaysPerYear != nil {
		t.MaxDaysPerYear = req.MaxDaysPerYear
	}
	if req.CarryOverEligible != nil {
		t.CarryOverEligible = *req.CarryOverEligible
	}

	if err := s.TypeRepository.Update(ctx, t); err != nil {
		return leave.Type{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return t, nil
}

func (s *TypeService) GetByID(ctx context.Context, id string) (leave.Type, error) {
	return s.TypeRepository.GetByID(ctx, id)
}

func (s *TypeService) List(ctx context.Context) ([]leave.Type, error) {
	return s.TypeRepository.List(ctx)
}

func (s *TypeService) Delete(ctx context.Context, id string) error {
	return s.TypeRepository.Delete(ctx, id)
}
