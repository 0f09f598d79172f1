package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
)

func TestCheckConflictsReportsOverlap(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(10, "eng")}
	requests := &fakeRequestRepo{requests: []leave.Request{
		{
			ID: "candidate", PersonnelID: "p1", LeaveTypeID: "annual",
			StartDate: date(2025, 3, 4), EndDate: date(2025, 3, 8),
			Status: leave.StatusPending,
		},
		approvedRequest("existing", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}

	svc := NewRequestService(nil, &fakeTypeRepo{}, requests, people, nil)

	report, err := svc.CheckConflicts(ctx, "candidate")
	require.NoError(t, err)

	assert.True(t, report.HasConflicts)
	assert.Equal(t, 5, report.RequestedDays)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "existing", report.Conflicts[0].LeaveRequestID)
	assert.Equal(t, 2, report.Conflicts[0].OverlapDays)
	assert.False(t, report.CanApprove)
}

func TestCheckConflictsStaffingThreshold(t *testing.T) {
	ctx := context.Background()

	// 20 personnel, minimum required = ceil(20 * 0.3) = 6. With 15 on
	// approved leave over the candidate's range only 5 remain available.
	people := &fakePersonnelRepo{people: departmentOf(20, "eng")}
	requests := &fakeRequestRepo{requests: []leave.Request{
		{
			ID: "candidate", PersonnelID: "p20", LeaveTypeID: "annual",
			StartDate: date(2025, 7, 1), EndDate: date(2025, 7, 3),
			Status: leave.StatusPending,
		},
	}}
	for i := 1; i <= 15; i++ {
		requests.requests = append(requests.requests,
			approvedRequest(fmt.Sprintf("r%d", i), fmt.Sprintf("p%d", i), "annual",
				date(2025, 7, 1), date(2025, 7, 5)))
	}

	svc := NewRequestService(nil, &fakeTypeRepo{}, requests, people, nil)

	report, err := svc.CheckConflicts(ctx, "candidate")
	require.NoError(t, err)

	assert.Equal(t, 20, report.StaffingInfo.TotalPersonnel)
	assert.Equal(t, 6, report.StaffingInfo.MinimumRequired)
	assert.Equal(t, 15, report.StaffingInfo.WorstDayOnLeave)
	assert.True(t, report.HasStaffingIssues)
	assert.False(t, report.HasConflicts, "no overlap with the requester's own approved leave")
	assert.False(t, report.CanApprove)
}

func TestCheckConflictsCleanRequest(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: departmentOf(10, "eng")}
	requests := &fakeRequestRepo{requests: []leave.Request{
		{
			ID: "candidate", PersonnelID: "p1", LeaveTypeID: "annual",
			StartDate: date(2025, 3, 6), EndDate: date(2025, 3, 10),
			Status: leave.StatusPending,
		},
		approvedRequest("existing", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}

	svc := NewRequestService(nil, &fakeTypeRepo{}, requests, people, nil)

	report, err := svc.CheckConflicts(ctx, "candidate")
	require.NoError(t, err)

	assert.False(t, report.HasConflicts)
	assert.Empty(t, report.Conflicts)
	assert.False(t, report.HasStaffingIssues)
	assert.True(t, report.CanApprove)
}

// newDecisionService replaces the transaction boundary with a passthrough so
// the in-memory fakes can drive Approve and Reject.
func newDecisionService(requests *fakeRequestRepo, people *fakePersonnelRepo) *RequestService {
	svc := NewRequestService(nil, &fakeTypeRepo{}, requests, people, nil)
	svc.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc
}

func pendingRequest(id, personnelID string, start, end time.Time) leave.Request {
	return leave.Request{
		ID: id, PersonnelID: personnelID, LeaveTypeID: "annual",
		StartDate: start, EndDate: end,
		Status: leave.StatusPending,
	}
}

func TestApproveMarksPendingApproved(t *testing.T) {
	ctx := context.Background()

	requests := &fakeRequestRepo{requests: []leave.Request{
		pendingRequest("candidate", "p1", date(2025, 3, 4), date(2025, 3, 8)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	approved, err := svc.Approve(ctx, leave.ApproveRequest{LeaveRequestID: "candidate", ApproverID: "mgr"})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "mgr", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	stored, err := requests.GetByID(ctx, "candidate")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status)
}

func TestApproveRefusesProcessedRequest(t *testing.T) {
	ctx := context.Background()

	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("done", "p1", "annual", date(2025, 3, 4), date(2025, 3, 8)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	_, err := svc.Approve(ctx, leave.ApproveRequest{LeaveRequestID: "done", ApproverID: "mgr"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestApproveRefusesOverlapFoundUnderLock(t *testing.T) {
	ctx := context.Background()

	// An overlapping request was approved after the conflict check the
	// approver saw; the re-check inside the transaction must catch it.
	requests := &fakeRequestRepo{requests: []leave.Request{
		pendingRequest("candidate", "p1", date(2025, 3, 4), date(2025, 3, 8)),
		approvedRequest("existing", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	_, err := svc.Approve(ctx, leave.ApproveRequest{LeaveRequestID: "candidate", ApproverID: "mgr"})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	stored, err := requests.GetByID(ctx, "candidate")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, stored.Status, "a refused approval must leave the request pending")
}

func TestApproveAllowsAdjacentApprovedLeave(t *testing.T) {
	ctx := context.Background()

	requests := &fakeRequestRepo{requests: []leave.Request{
		pendingRequest("candidate", "p1", date(2025, 3, 6), date(2025, 3, 10)),
		approvedRequest("existing", "p1", "annual", date(2025, 3, 1), date(2025, 3, 5)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	approved, err := svc.Approve(ctx, leave.ApproveRequest{LeaveRequestID: "candidate", ApproverID: "mgr"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
}

func TestApproveUnknownRequest(t *testing.T) {
	ctx := context.Background()

	svc := newDecisionService(&fakeRequestRepo{}, &fakePersonnelRepo{})

	_, err := svc.Approve(ctx, leave.ApproveRequest{LeaveRequestID: "missing", ApproverID: "mgr"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestRejectMarksPendingRejected(t *testing.T) {
	ctx := context.Background()

	requests := &fakeRequestRepo{requests: []leave.Request{
		pendingRequest("candidate", "p1", date(2025, 3, 4), date(2025, 3, 8)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	rejected, err := svc.Reject(ctx, leave.RejectRequest{
		LeaveRequestID:  "candidate",
		ApproverID:      "mgr",
		RejectionReason: "project deadline",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "project deadline", *rejected.RejectionReason)

	stored, err := requests.GetByID(ctx, "candidate")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, stored.Status)
}

func TestRejectRefusesProcessedRequest(t *testing.T) {
	ctx := context.Background()

	requests := &fakeRequestRepo{requests: []leave.Request{
		approvedRequest("done", "p1", "annual", date(2025, 3, 4), date(2025, 3, 8)),
	}}
	svc := newDecisionService(requests, &fakePersonnelRepo{})

	_, err := svc.Reject(ctx, leave.RejectRequest{
		LeaveRequestID:  "done",
		ApproverID:      "mgr",
		RejectionReason: "too late",
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()

	people := &fakePersonnelRepo{people: []personnel.Personnel{
		{ID: "p1", FullName: "Person One", DepartmentID: "eng"},
	}}
	types := &fakeTypeRepo{types: []leave.Type{
		{ID: "annual", Name: "Annual Leave", MaxDaysPerYear: intPtr(20)},
	}}
	requests := &fakeRequestRepo{}

	svc := NewRequestService(nil, types, requests, people, nil)

	created, err := svc.Submit(ctx, leave.SubmitRequest{
		PersonnelID: "p1",
		LeaveTypeID: "annual",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-05",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, date(2025, 9, 1), created.StartDate)
	assert.Equal(t, date(2025, 9, 5), created.EndDate)
	require.Len(t, requests.requests, 1)
}

func TestSubmitRejectsUnknownReferences(t *testing.T) {
	ctx := context.Background()

	svc := NewRequestService(nil, &fakeTypeRepo{}, &fakeRequestRepo{}, &fakePersonnelRepo{}, nil)

	_, err := svc.Submit(ctx, leave.SubmitRequest{
		PersonnelID: "missing",
		LeaveTypeID: "annual",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-05",
	})
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestSubmitRejectsReversedDates(t *testing.T) {
	ctx := context.Background()

	svc := NewRequestService(nil, &fakeTypeRepo{}, &fakeRequestRepo{}, &fakePersonnelRepo{}, nil)

	_, err := svc.Submit(ctx, leave.SubmitRequest{
		PersonnelID: "p1",
		LeaveTypeID: "annual",
		StartDate:   "2025-05-10",
		EndDate:     "2025-05-05",
	})
	require.Error(t, err)
}
