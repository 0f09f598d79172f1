package leave

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
)

// adequateCoveragePercent is the fixed threshold below which a day counts as
// critically understaffed.
const adequateCoveragePercent = 70

type CoverageService struct {
	personnel.Repository
	leave.RequestRepository
}

func NewCoverageService(personnelRepository personnel.Repository, requestRepository leave.RequestRepository) *CoverageService {
	return &CoverageService{
		Repository:        personnelRepository,
		RequestRepository: requestRepository,
	}
}

// ComputeCoverage computes per-day staffing coverage for one department over
// an inclusive date range. A department with no personnel is an error, never
// a division by zero.
func (s *CoverageService) ComputeCoverage(ctx context.Context, departmentID string, start, end time.Time) (leave.CoverageSummary, error) {
	if _, err := leave.InclusiveDays(start, end); err != nil {
		return leave.CoverageSummary{}, err
	}

	people, err := s.Repository.ListByDepartment(ctx, departmentID)
	if err != nil {
		return leave.CoverageSummary{}, fmt.Errorf("failed to list department personnel: %w", err)
	}
	if len(people) == 0 {
		return leave.CoverageSummary{}, leave.ErrNoDepartmentPersonnel
	}

	ids := make([]string, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}

	requests, err := s.RequestRepository.ListByPersonnelIDs(ctx, ids)
	if err != nil {
		return leave.CoverageSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	days := coverageOverScope(ids, requests, start, end)

	summary := leave.CoverageSummary{
		DepartmentID:   departmentID,
		StartDate:      leave.DateOnly(start),
		EndDate:        leave.DateOnly(end),
		TotalPersonnel: len(people),
		Days:           days,
	}

	pctSum := 0
	for _, d := range days {
		pctSum += d.CoveragePercent
		if d.Adequate {
			summary.AdequateDays++
		} else {
			summary.CriticalDays++
		}
	}
	if len(days) > 0 {
		summary.AverageCoverage = int(math.Round(float64(pctSum) / float64(len(days))))
	}

	return summary, nil
}

// coverageOverScope computes the per-day staffing picture for an arbitrary
// scope of personnel. The department coverage report and the org-wide
// staffing check both run through here, so the two can never drift apart.
// Callers guarantee a non-empty scope and an ordered range.
func coverageOverScope(personnelIDs []string, requests []leave.Request, start, end time.Time) []leave.CoverageDay {
	inScope := make(map[string]struct{}, len(personnelIDs))
	for _, id := range personnelIDs {
		inScope[id] = struct{}{}
	}

	var approved []leave.Request
	for _, r := range requests {
		if r.Status != leave.StatusApproved {
			continue
		}
		if _, ok := inScope[r.PersonnelID]; !ok {
			continue
		}
		if !leave.RangesOverlap(r.StartDate, r.EndDate, start, end) {
			continue
		}
		approved = append(approved, r)
	}

	total := len(personnelIDs)
	start, end = leave.DateOnly(start), leave.DateOnly(end)

	var days []leave.CoverageDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		onLeave := make(map[string]struct{})
		for _, r := range approved {
			if leave.RangesOverlap(r.StartDate, r.EndDate, d, d) {
				onLeave[r.PersonnelID] = struct{}{}
			}
		}

		available := total - len(onLeave)
		pct := int(math.Round(float64(available) / float64(total) * 100))

		day := leave.CoverageDay{
			Date:            d,
			TotalPersonnel:  total,
			OnLeave:         len(onLeave),
			Available:       available,
			CoveragePercent: pct,
			Adequate:        pct >= adequateCoveragePercent,
		}
		for id := range onLeave {
			day.OnLeaveIDs = append(day.OnLeaveIDs, id)
		}
		sort.Strings(day.OnLeaveIDs)
		days = append(days, day)
	}

	return days
}
