package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/domain/shift"
)

// Notifier receives assignment events. Delivery is best effort and never
// fails the assignment.
type Notifier interface {
	ShiftAssigned(ctx context.Context, personnelID, shiftName, date string)
}

type Service struct {
	shift.Repository
	shift.AssignmentRepository
	personnelRepository personnel.Repository
	requestRepository   leave.RequestRepository

	notifier Notifier
}

func NewService(
	shiftRepository shift.Repository,
	assignmentRepository shift.AssignmentRepository,
	personnelRepository personnel.Repository,
	requestRepository leave.RequestRepository,
	notifier Notifier,
) *Service {
	return &Service{
		Repository:           shiftRepository,
		AssignmentRepository: assignmentRepository,
		personnelRepository:  personnelRepository,
		requestRepository:    requestRepository,
		notifier:             notifier,
	}
}

func (s *Service) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	created, err := s.Repository.Create(ctx, shift.Shift{
		Name:  req.Name,
		Start: req.Start,
		End:   req.End,
	})
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// UpdateShift applies the set fields of req onto an existing shift.
func (s *Service) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	existing, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Start != nil {
		existing.Start = *req.Start
	}
	if req.End != nil {
		existing.End = *req.End
	}

	if err := s.Repository.Update(ctx, existing); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return existing, nil
}

func (s *Service) ListShifts(ctx context.Context) ([]shift.Shift, error) {
	return s.Repository.List(ctx)
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	return s.Repository.Delete(ctx, id)
}

// Assign places a personnel on a shift for a date. A personnel cannot hold
// two assignments on one date, and cannot be scheduled onto a day covered by
// their approved leave.
func (s *Service) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	if _, err := s.personnelRepository.GetByID(ctx, req.PersonnelID); err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to get personnel: %w", err)
	}
	sh, err := s.Repository.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to get shift: %w", err)
	}

	date := req.ParsedDate()

	exists, err := s.AssignmentRepository.ExistsForPersonnelOnDate(ctx, req.PersonnelID, date)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return shift.Assignment{}, shift.ErrDuplicateAssignment
	}

	requests, err := s.requestRepository.ListByPersonnel(ctx, req.PersonnelID)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range requests {
		if r.Status != leave.StatusApproved {
			continue
		}
		if leave.RangesOverlap(r.StartDate, r.EndDate, date, date) {
			return shift.Assignment{}, shift.ErrAssignedOnLeave
		}
	}

	created, err := s.AssignmentRepository.Create(ctx, shift.Assignment{
		PersonnelID: req.PersonnelID,
		ShiftID:     req.ShiftID,
		Date:        date,
	})
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ShiftAssigned(ctx, created.PersonnelID, sh.Name, date.Format("2006-01-02"))
	}

	return created, nil
}

func (s *Service) ScheduleForDate(ctx context.Context, date time.Time) ([]shift.Assignment, error) {
	return s.AssignmentRepository.ListByDate(ctx, date)
}

func (s *Service) ScheduleForPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]shift.Assignment, error) {
	if _, err := leave.InclusiveDays(from, to); err != nil {
		return nil, err
	}
	return s.AssignmentRepository.ListByPersonnel(ctx, personnelID, from, to)
}

func (s *Service) Unassign(ctx context.Context, id string) error {
	return s.AssignmentRepository.Delete(ctx, id)
}
