package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

// minimumStaffingRatio is the organization-wide share of personnel that must
// stay available on any day a leave would cover.
const minimumStaffingRatio = 0.3

// Notifier receives leave lifecycle events. Implementations must not block;
// delivery is best effort and never fails the operation that triggered it.
type Notifier interface {
	LeaveSubmitted(ctx context.Context, request leave.Request)
	LeaveDecided(ctx context.Context, request leave.Request)
}

type RequestService struct {
	db *database.DB
	leave.TypeRepository
	leave.RequestRepository
	personnel.Repository

	notifier Notifier

	// runTx wraps a unit of work in a transaction boundary. Swappable for
	// tests so the approval path can run against in-memory repositories.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewRequestService(
	db *database.DB,
	typeRepository leave.TypeRepository,
	requestRepository leave.RequestRepository,
	personnelRepository personnel.Repository,
	notifier Notifier,
) *RequestService {
	s := &RequestService{
		db:                db,
		TypeRepository:    typeRepository,
		RequestRepository: requestRepository,
		Repository:        personnelRepository,
		notifier:          notifier,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// Submit stores a new pending request after verifying its references exist.
// Balance and conflict findings do not block submission; they surface through
// Validate and again, authoritatively, at approval time.
func (s *RequestService) Submit(ctx context.Context, req leave.SubmitRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	if _, err := s.Repository.GetByID(ctx, req.PersonnelID); err != nil {
		return leave.Request{}, fmt.Errorf("failed to get personnel: %w", err)
	}
	if _, err := s.TypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.Request{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	start, end := req.Dates()
	request := leave.Request{
		PersonnelID: req.PersonnelID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.StatusPending,
		Reason:      req.Reason,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.LeaveSubmitted(ctx, created)
	}

	return created, nil
}

func (s *RequestService) Get(ctx context.Context, id string) (leave.Request, error) {
	return s.RequestRepository.GetByID(ctx, id)
}

func (s *RequestService) ListForPersonnel(ctx context.Context, personnelID string) ([]leave.Request, error) {
	return s.RequestRepository.ListByPersonnel(ctx, personnelID)
}

func (s *RequestService) ListPendingRequests(ctx context.Context) ([]leave.Request, error) {
	return s.RequestRepository.ListPending(ctx)
}

// Approve transitions a pending request to approved. The status check and
// the overlap check run inside one transaction with the request row locked,
// so two concurrent approvals for the same personnel cannot both pass the
// check and commit overlapping leave.
func (s *RequestService) Approve(ctx context.Context, req leave.ApproveRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	var approved leave.Request
	err := s.runTx(ctx, func(txCtx context.Context) error {
		request, err := s.RequestRepository.LockForUpdate(txCtx, req.LeaveRequestID)
		if err != nil {
			return fmt.Errorf("failed to lock leave request: %w", err)
		}

		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		overlapping, err := s.RequestRepository.CountOverlappingApproved(
			txCtx, request.PersonnelID, request.StartDate, request.EndDate, request.ID)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping > 0 {
			return leave.ErrOverlappingLeave
		}

		now := time.Now()
		request.Status = leave.StatusApproved
		request.ApprovedBy = &req.ApproverID
		request.ApprovedAt = &now

		if err := s.RequestRepository.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	if s.notifier != nil {
		s.notifier.LeaveDecided(ctx, approved)
	}

	return approved, nil
}

// Reject transitions a pending request to rejected with a reason.
func (s *RequestService) Reject(ctx context.Context, req leave.RejectRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	var rejected leave.Request
	err := s.runTx(ctx, func(txCtx context.Context) error {
		request, err := s.RequestRepository.LockForUpdate(txCtx, req.LeaveRequestID)
		if err != nil {
			return fmt.Errorf("failed to lock leave request: %w", err)
		}

		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		request.Status = leave.StatusRejected
		request.ApprovedBy = &req.ApproverID
		request.RejectionReason = &req.RejectionReason

		if err := s.RequestRepository.UpdateStatus(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		rejected = request
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	if s.notifier != nil {
		s.notifier.LeaveDecided(ctx, rejected)
	}

	return rejected, nil
}

// CheckConflicts builds the approver-facing report for one pending request:
// overlaps with the requester's other approved leave, plus the
// organization-wide staffing picture over the requested days.
func (s *RequestService) CheckConflicts(ctx context.Context, leaveRequestID string) (leave.ConflictReport, error) {
	request, err := s.RequestRepository.GetByID(ctx, leaveRequestID)
	if err != nil {
		return leave.ConflictReport{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	report := leave.ConflictReport{
		LeaveRequestID: request.ID,
		RequestedDays:  request.DurationDays(),
		Conflicts:      []leave.Conflict{},
	}

	own, err := s.RequestRepository.ListByPersonnel(ctx, request.PersonnelID)
	if err != nil {
		return leave.ConflictReport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range own {
		if r.ID == request.ID || r.Status != leave.StatusApproved {
			continue
		}
		if !leave.RangesOverlap(r.StartDate, r.EndDate, request.StartDate, request.EndDate) {
			continue
		}
		conflict := leave.Conflict{
			LeaveRequestID: r.ID,
			PersonnelID:    r.PersonnelID,
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
			OverlapDays:    leave.OverlapDays(r.StartDate, r.EndDate, request.StartDate, request.EndDate),
		}
		if r.PersonnelName != nil {
			conflict.PersonnelName = *r.PersonnelName
		}
		report.Conflicts = append(report.Conflicts, conflict)
	}
	report.HasConflicts = len(report.Conflicts) > 0

	people, err := s.Repository.List(ctx)
	if err != nil {
		return leave.ConflictReport{}, fmt.Errorf("failed to list personnel: %w", err)
	}

	ids := make([]string, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}

	report.StaffingInfo = leave.StaffingInfo{
		TotalPersonnel:  len(people),
		MinimumRequired: int(math.Ceil(float64(len(people)) * minimumStaffingRatio)),
	}

	if len(people) > 0 {
		all, err := s.RequestRepository.ListByPersonnelIDs(ctx, ids)
		if err != nil {
			return leave.ConflictReport{}, fmt.Errorf("failed to list leave requests: %w", err)
		}

		days := coverageOverScope(ids, all, request.StartDate, request.EndDate)
		for _, d := range days {
			if d.Available < report.StaffingInfo.MinimumRequired {
				report.HasStaffingIssues = true
			}
			if d.OnLeave > report.StaffingInfo.WorstDayOnLeave {
				report.StaffingInfo.WorstDayOnLeave = d.OnLeave
				report.StaffingInfo.WorstDayDate = d.Date.Format("2006-01-02")
			}
		}
	}

	report.CanApprove = request.Status == leave.StatusPending && !report.HasConflicts && !report.HasStaffingIssues

	return report, nil
}
