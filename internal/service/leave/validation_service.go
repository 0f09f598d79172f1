package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

// longLeaveWarningDays is the duration above which a request gets a
// long-leave warning.
const longLeaveWarningDays = 30

// nearExhaustionRatio triggers a warning when a request would consume most
// of the remaining balance.
const nearExhaustionRatio = 0.8

type ValidationService struct {
	balance *BalanceService
	leave.RequestRepository

	// now is swappable for tests.
	now func() time.Time
}

func NewValidationService(balance *BalanceService, requestRepository leave.RequestRepository) *ValidationService {
	return &ValidationService{
		balance:           balance,
		RequestRepository: requestRepository,
		now:               time.Now,
	}
}

// Validate evaluates every rule against a candidate request and collects the
// findings. Rules never short-circuit; an early error still lets later rules
// report, so the caller sees the full picture in one pass. ExcludeRequestID
// keeps a stored request from conflicting with itself when re-validating.
func (s *ValidationService) Validate(ctx context.Context, personnelID, leaveTypeID string, start, end time.Time, excludeRequestID string) (leave.ValidationResult, error) {
	result := leave.ValidationResult{Valid: true}

	start, end = leave.DateOnly(start), leave.DateOnly(end)

	// Rule 1: date order.
	datesOrdered := !end.Before(start)
	if !datesOrdered {
		result.AddError("date_order", "start date is after end date")
	}

	// Rule 2: past start date. Informational, never blocks.
	today := leave.DateOnly(s.now())
	if start.Before(today) {
		result.AddWarning("past_start", "start date is in the past")
	}

	// Rule 3: long leave. Needs a day count, which a reversed range does not
	// have.
	requestedDays := 0
	if datesOrdered {
		var err error
		requestedDays, err = leave.InclusiveDays(start, end)
		if err != nil {
			return leave.ValidationResult{}, err
		}
		if requestedDays > longLeaveWarningDays {
			result.AddWarning("long_leave", fmt.Sprintf("leave of %d days may need special approval", requestedDays))
		}
	}

	// Rule 4: balance check against the remaining days for this type and
	// year. Only the day-count comparisons need an ordered range; the
	// used/entitled info line is appended regardless.
	entry, err := s.balance.BalanceFor(ctx, personnelID, leaveTypeID, start.Year())
	if err != nil {
		return leave.ValidationResult{}, fmt.Errorf("failed to compute balance: %w", err)
	}
	if datesOrdered {
		if requestedDays > entry.RemainingDays {
			result.AddError("insufficient_balance",
				fmt.Sprintf("requested %d days but only %d remaining", requestedDays, entry.RemainingDays))
		} else if float64(requestedDays) > nearExhaustionRatio*float64(entry.RemainingDays) {
			result.AddWarning("near_exhaustion",
				fmt.Sprintf("request uses most of the remaining balance (%d of %d days)", requestedDays, entry.RemainingDays))
		}
	}
	result.AddInfo("balance",
		fmt.Sprintf("%d of %d entitled days used this year", entry.UsedDays, entry.EntitledDays))

	// Rule 5: conflict with the personnel's other approved requests.
	requests, err := s.RequestRepository.ListByPersonnel(ctx, personnelID)
	if err != nil {
		return leave.ValidationResult{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range requests {
		if r.Status != leave.StatusApproved || r.ID == excludeRequestID {
			continue
		}
		if leave.RangesOverlap(r.StartDate, r.EndDate, start, end) {
			result.AddError("conflict", "dates conflict with existing approved leave")
			break
		}
	}

	return result, nil
}
