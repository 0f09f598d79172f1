package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
)

func departmentOf(n int, departmentID string) []personnel.Personnel {
	people := make([]personnel.Personnel, 0, n)
	for i := 0; i < n; i++ {
		people = append(people, personnel.Personnel{
			ID:           fmt.Sprintf("p%d", i+1),
			FullName:     fmt.Sprintf("Person %d", i+1),
			DepartmentID: departmentID,
		})
	}
	return people
}

func TestComputeCoverageBoundaryIsAdequate(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(10, "eng")}
	requests := &fakeRequestRepo{}
	for i := 1; i <= 3; i++ {
		requests.requests = append(requests.requests,
			approvedRequest(fmt.Sprintf("r%d", i), fmt.Sprintf("p%d", i), "annual",
				date(2025, 6, 10), date(2025, 6, 10)))
	}

	svc := NewCoverageService(people, requests)

	summary, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 10), date(2025, 6, 10))
	require.NoError(t, err)
	require.Len(t, summary.Days, 1)

	day := summary.Days[0]
	assert.Equal(t, 10, day.TotalPersonnel)
	assert.Equal(t, 3, day.OnLeave)
	assert.Equal(t, 7, day.Available)
	assert.Equal(t, 70, day.CoveragePercent)
	assert.True(t, day.Adequate, "70 percent is the inclusive adequacy boundary")
}

func TestComputeCoverageBelowThreshold(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(10, "eng")}
	requests := &fakeRequestRepo{}
	for i := 1; i <= 4; i++ {
		requests.requests = append(requests.requests,
			approvedRequest(fmt.Sprintf("r%d", i), fmt.Sprintf("p%d", i), "annual",
				date(2025, 6, 10), date(2025, 6, 10)))
	}

	svc := NewCoverageService(people, requests)

	summary, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 10), date(2025, 6, 10))
	require.NoError(t, err)

	day := summary.Days[0]
	assert.Equal(t, 6, day.Available)
	assert.Equal(t, 60, day.CoveragePercent)
	assert.False(t, day.Adequate)
	assert.Equal(t, 1, summary.CriticalDays)
	assert.Equal(t, 0, summary.AdequateDays)
}

func TestComputeCoverageOneEntryPerDay(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(5, "eng")}
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 6, 9), date(2025, 6, 11)),
	}}

	svc := NewCoverageService(people, requests)

	summary, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 8), date(2025, 6, 14))
	require.NoError(t, err)
	require.Len(t, summary.Days, 7)

	for i, day := range summary.Days {
		assert.Equal(t, date(2025, 6, 8+i), day.Date, "days are chronological")
		assert.GreaterOrEqual(t, day.CoveragePercent, 0)
		assert.LessOrEqual(t, day.CoveragePercent, 100)
	}

	assert.Equal(t, 1, summary.Days[1].OnLeave)
	assert.Equal(t, 1, summary.Days[2].OnLeave)
	assert.Equal(t, 1, summary.Days[3].OnLeave)
	assert.Equal(t, 0, summary.Days[0].OnLeave)
	assert.Equal(t, 0, summary.Days[4].OnLeave)
}

func TestComputeCoverageCountsPersonnelOnce(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(4, "eng")}
	// Two approved requests for the same person covering the same day must
	// not count that person on leave twice.
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 6, 10), date(2025, 6, 10)),
		approvedRequest("r2", "p1", "sick", date(2025, 6, 10), date(2025, 6, 12)),
	}}

	svc := NewCoverageService(people, requests)

	summary, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 10), date(2025, 6, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Days[0].OnLeave)
	assert.Equal(t, []string{"p1"}, summary.Days[0].OnLeaveIDs)
}

func TestComputeCoverageEmptyDepartment(t *testing.T) {
	ctx := context.Background()

	svc := NewCoverageService(&fakePersonnelRepo{}, &fakeRequestRepo{})

	_, err := svc.ComputeCoverage(ctx, "empty", date(2025, 6, 10), date(2025, 6, 12))
	assert.ErrorIs(t, err, leave.ErrNoDepartmentPersonnel)
}

func TestComputeCoverageReversedRange(t *testing.T) {
	ctx := context.Background()

	svc := NewCoverageService(&fakePersonnelRepo{people: departmentOf(3, "eng")}, &fakeRequestRepo{})

	_, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 12), date(2025, 6, 10))
	assert.ErrorIs(t, err, leave.ErrReversedDateRange)
}

func TestComputeCoverageIgnoresOtherDepartments(t *testing.T) {
	ctx := context.Background()

	people := departmentOf(5, "eng")
	people = append(people, personnel.Personnel{ID: "sales-1", FullName: "Sales One", DepartmentID: "sales"})

	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "sales-1", "annual", date(2025, 6, 10), date(2025, 6, 10)),
	}}

	svc := NewCoverageService(&fakePersonnelRepo{people: people}, requests)

	summary, err := svc.ComputeCoverage(ctx, "eng", date(2025, 6, 10), date(2025, 6, 10))
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalPersonnel)
	assert.Equal(t, 0, summary.Days[0].OnLeave)
}
