package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

func newValidationService(types *fakeTypeRepo, requests *fakeRequestRepo) *ValidationService {
	svc := NewValidationService(NewBalanceService(types, requests), requests)
	svc.now = func() time.Time { return date(2025, 1, 1) }
	return svc
}

func annualTypeRepo(maxDays int) *fakeTypeRepo {
	return &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(maxDays), CarryOverEligible: true},
	}}
}

func issueCodes(issues []leave.ValidationIssue) []string {
	codes := make([]string, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	return codes
}

func TestValidateInsufficientBalance(t *testing.T) {
	ctx := context.Background()

	// 20 entitled, 18 used, requesting 3 more.
	types := annualTypeRepo(20)
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 2, 1), date(2025, 2, 18)),
	}}

	svc := newValidationService(types, requests)

	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 9, 1), date(2025, 9, 3), "")
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "insufficient_balance", result.Errors[0].Code)
	assert.Contains(t, result.Errors[0].Message, "3")
	assert.Contains(t, result.Errors[0].Message, "2")
}

func TestValidateNearExhaustionWarning(t *testing.T) {
	ctx := context.Background()

	types := annualTypeRepo(20)
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 2, 1), date(2025, 2, 10)),
	}}

	svc := newValidationService(types, requests)

	// 10 remaining, requesting 9: above the 0.8 ratio but within balance.
	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 9, 1), date(2025, 9, 9), "")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Contains(t, issueCodes(result.Warnings), "near_exhaustion")
}

func TestValidateAlwaysReportsBalanceInfo(t *testing.T) {
	ctx := context.Background()

	svc := newValidationService(annualTypeRepo(20), &fakeRequestRepo{})

	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 9, 1), date(2025, 9, 2), "")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Info, 1)
	assert.Equal(t, "balance", result.Info[0].Code)
	assert.Contains(t, result.Info[0].Message, "0 of 20")
}

func TestValidateLongLeaveWarning(t *testing.T) {
	ctx := context.Background()

	svc := newValidationService(annualTypeRepo(60), &fakeRequestRepo{})

	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 3, 1), date(2025, 4, 5), "")
	require.NoError(t, err)

	assert.Contains(t, issueCodes(result.Warnings), "long_leave")
}

func TestValidatePastStartWarning(t *testing.T) {
	ctx := context.Background()

	svc := newValidationService(annualTypeRepo(20), &fakeRequestRepo{})

	result, err := svc.Validate(ctx, "p1", "annual", date(2024, 12, 1), date(2024, 12, 3), "")
	require.NoError(t, err)

	assert.True(t, result.Valid, "past start is a warning, not an error")
	assert.Contains(t, issueCodes(result.Warnings), "past_start")
}

func TestValidateReversedDates(t *testing.T) {
	ctx := context.Background()

	svc := newValidationService(annualTypeRepo(20), &fakeRequestRepo{})

	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 5, 10), date(2025, 5, 5), "")
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Contains(t, issueCodes(result.Errors), "date_order")
	// Day-count rules cannot run on a reversed range, but the balance info
	// line still reports.
	assert.NotContains(t, issueCodes(result.Errors), "insufficient_balance")
	require.Len(t, result.Info, 1)
	assert.Equal(t, "balance", result.Info[0].Code)
	assert.Contains(t, result.Info[0].Message, "0 of 20")
}

func TestValidateConflictDetection(t *testing.T) {
	ctx := context.Background()

	types := annualTypeRepo(30)
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}

	svc := newValidationService(types, requests)

	overlapping, err := svc.Validate(ctx, "p1", "annual", date(2025, 3, 4), date(2025, 3, 8), "")
	require.NoError(t, err)
	assert.False(t, overlapping.Valid)
	assert.Contains(t, issueCodes(overlapping.Errors), "conflict")

	clear, err := svc.Validate(ctx, "p1", "annual", date(2025, 3, 6), date(2025, 3, 10), "")
	require.NoError(t, err)
	assert.True(t, clear.Valid)
	assert.NotContains(t, issueCodes(clear.Errors), "conflict")
}

func TestValidateExcludesOwnRequest(t *testing.T) {
	ctx := context.Background()

	types := annualTypeRepo(30)
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}

	svc := newValidationService(types, requests)

	result, err := svc.Validate(ctx, "p1", "annual", date(2025, 3, 1), date(2025, 3, 5), "r1")
	require.NoError(t, err)
	assert.NotContains(t, issueCodes(result.Errors), "conflict")
}

func TestValidateIsDeterministic(t *testing.T) {
	ctx := context.Background()

	types := annualTypeRepo(20)
	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("r1", "p1", "annual", date(2025, 2, 1), date(2025, 2, 18)),
	}}

	svc := newValidationService(types, requests)

	first, err := svc.Validate(ctx, "p1", "annual", date(2025, 9, 1), date(2025, 9, 3), "")
	require.NoError(t, err)
	second, err := svc.Validate(ctx, "p1", "annual", date(2025, 9, 1), date(2025, 9, 3), "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
