package leave

import (
	"context"
	"fmt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

// maxCarryOverDays caps how many unused days a carry-over eligible type may
// roll into the next year.
const maxCarryOverDays = 5

type BalanceService struct {
	leave.TypeRepository
	leave.RequestRepository
}

func NewBalanceService(typeRepository leave.TypeRepository, requestRepository leave.RequestRepository) *BalanceService {
	return &BalanceService{
		TypeRepository:    typeRepository,
		RequestRepository: requestRepository,
	}
}

// ComputeBalance recomputes the per-type leave balance for one personnel and
// year from leave types and approved requests. Nothing is persisted; every
// call reflects the data as it stands.
func (s *BalanceService) ComputeBalance(ctx context.Context, personnelID string, year int) (leave.BalanceSummary, error) {
	types, err := s.TypeRepository.List(ctx)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to list leave types: %w", err)
	}

	requests, err := s.RequestRepository.ListByPersonnel(ctx, personnelID)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	// Only approved requests that start in the target year count.
	var counted []leave.Request
	for _, r := range requests {
		if r.Status == leave.StatusApproved && r.StartDate.Year() == year {
			counted = append(counted, r)
		}
	}

	summary := leave.BalanceSummary{
		PersonnelID: personnelID,
		Year:        year,
		Balances:    make([]leave.BalanceEntry, 0, len(types)),
	}

	for _, t := range types {
		used := 0
		for _, r := range counted {
			if r.LeaveTypeID != t.ID {
				continue
			}
			days, err := leave.InclusiveDays(r.StartDate, r.EndDate)
			if err != nil {
				return leave.BalanceSummary{}, fmt.Errorf("leave request %s has invalid date range: %w", r.ID, err)
			}
			used += days
		}

		entitled := 0
		if t.MaxDaysPerYear != nil {
			entitled = *t.MaxDaysPerYear
		}

		remaining := entitled - used
		if remaining < 0 {
			remaining = 0
		}

		carryOver := 0
		if t.CarryOverEligible {
			carryOver = remaining
			if carryOver > maxCarryOverDays {
				carryOver = maxCarryOverDays
			}
		}

		summary.Balances = append(summary.Balances, leave.BalanceEntry{
			LeaveTypeID:       t.ID,
			LeaveTypeName:     t.Name,
			EntitledDays:      entitled,
			UsedDays:          used,
			RemainingDays:     remaining,
			CarryOverDays:     carryOver,
			TotalAvailable:    remaining + carryOver,
			CarryOverEligible: t.CarryOverEligible,
		})
	}

	// Total usage counts every approved request in the year, independent of
	// leave type.
	for _, r := range counted {
		days, err := leave.InclusiveDays(r.StartDate, r.EndDate)
		if err != nil {
			return leave.BalanceSummary{}, fmt.Errorf("leave request %s has invalid date range: %w", r.ID, err)
		}
		summary.TotalUsedDays += days
	}

	return summary, nil
}

// BalanceFor returns the balance entry for a single leave type.
func (s *BalanceService) BalanceFor(ctx context.Context, personnelID, leaveTypeID string, year int) (leave.BalanceEntry, error) {
	summary, err := s.ComputeBalance(ctx, personnelID, year)
	if err != nil {
		return leave.BalanceEntry{}, err
	}
	for _, b := range summary.Balances {
		if b.LeaveTypeID == leaveTypeID {
			return b, nil
		}
	}
	return leave.BalanceEntry{}, leave.ErrLeaveTypeNotFound
}
