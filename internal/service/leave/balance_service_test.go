package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

func intPtr(v int) *int { return &v }

func TestComputeBalance(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(20), CarryOverEligible: true},
		{ID: "sick", Name: "Sick Leave", MaxDaysPerYear: intPtr(10)},
	}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 2, 3), date(2025, 2, 7)),
		approvedRequest("r2", "p1", "annual", date(2025, 7, 14), date(2025, 7, 16)),
		approvedRequest("r3", "p1", "sick", date(2025, 4, 1), date(2025, 4, 1)),
	}}

	svc := NewBalanceService(types, requests)

	summary, err := svc.ComputeBalance(ctx, "p1", 2025)
	require.NoError(t, err)

	require.Len(t, summary.Balances, 2)
	annual := summary.Balances[0]
	assert.Equal(t, "annual", annual.LeaveTypeID)
	assert.Equal(t, 20, annual.EntitledDays)
	assert.Equal(t, 8, annual.UsedDays)
	assert.Equal(t, 12, annual.RemainingDays)
	assert.Equal(t, 5, annual.CarryOverDays, "carry over is capped at 5")
	assert.Equal(t, 17, annual.TotalAvailable)

	sick := summary.Balances[1]
	assert.Equal(t, 1, sick.UsedDays)
	assert.Equal(t, 9, sick.RemainingDays)
	assert.Equal(t, 0, sick.CarryOverDays, "sick leave does not carry over")

	assert.Equal(t, 9, summary.TotalUsedDays)
}

func TestComputeBalanceIgnoresOtherYearsAndStatuses(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(20), CarryOverEligible: true},
	}}
	pending := leave.Request{
		ID: "r-pending", PersonnelID: "p1", LeaveTypeID: "annual",
		StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 5),
		Status: leave.StatusPending,
	}
	rejected := leave.Request{
		ID: "r-rejected", PersonnelID: "p1", LeaveTypeID: "annual",
		StartDate: date(2025, 8, 1), EndDate: date(2025, 8, 5),
		Status: leave.StatusRejected,
	}
	requests := &fakeRequestRepo{requests: []leave.Request{
		pending,
		rejected,
		approvedRequest("r-last-year", "p1", "annual", date(2024, 6, 1), date(2024, 6, 5)),
		approvedRequest("r-other", "p2", "annual", date(2025, 6, 1), date(2025, 6, 5)),
	}}

	svc := NewBalanceService(types, requests)

	summary, err := svc.ComputeBalance(ctx, "p1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Balances[0].UsedDays)
	assert.Equal(t, 0, summary.TotalUsedDays)
}

func TestComputeBalanceRemainingNeverNegative(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(5), CarryOverEligible: true},
	}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 2, 1), date(2025, 2, 10)), // 10 days, over entitlement
	}}

	svc := NewBalanceService(types, requests)

	summary, err := svc.ComputeBalance(ctx, "p1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Balances[0].UsedDays)
	assert.Equal(t, 0, summary.Balances[0].RemainingDays)
	assert.Equal(t, 0, summary.Balances[0].CarryOverDays)
}

func TestComputeBalanceUnlimitedTypeHasZeroEntitlement(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "unpaid", Name: "Unpaid Leave"},
	}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "unpaid", date(2025, 3, 1), date(2025, 3, 3)),
	}}

	svc := NewBalanceService(types, requests)

	summary, err := svc.ComputeBalance(ctx, "p1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Balances[0].EntitledDays)
	assert.Equal(t, 3, summary.Balances[0].UsedDays)
	assert.Equal(t, 0, summary.Balances[0].RemainingDays)
	assert.Equal(t, 3, summary.TotalUsedDays)
}

func TestComputeBalanceReversedStoredRange(t *testing.T) {
	ctx := context.Background()

	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(20)},
	}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r-bad", "p1", "annual", date(2025, 5, 10), date(2025, 5, 5)),
	}}

	svc := NewBalanceService(types, requests)

	_, err := svc.ComputeBalance(ctx, "p1", 2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrReversedDateRange)
	assert.Contains(t, err.Error(), "r-bad")
}
