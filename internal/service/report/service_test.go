package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	leavesvc "github.com/peoplecore/hrm-backend-go/internal/service/leave"
)

type fakePersonnelRepo struct {
	people []personnel.Personnel
}

func (f *fakePersonnelRepo) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	f.people = append(f.people, p)
	return p, nil
}

func (f *fakePersonnelRepo) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	for _, p := range f.people {
		if p.ID == id {
			return p, nil
		}
	}
	return personnel.Personnel{}, personnel.ErrPersonnelNotFound
}

func (f *fakePersonnelRepo) List(ctx context.Context) ([]personnel.Personnel, error) {
	return f.people, nil
}

func (f *fakePersonnelRepo) ListByDepartment(ctx context.Context, departmentID string) ([]personnel.Personnel, error) {
	var out []personnel.Personnel
	for _, p := range f.people {
		if p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonnelRepo) ListPaged(ctx context.Context, filter personnel.Filter) ([]personnel.Personnel, int64, error) {
	return f.people, int64(len(f.people)), nil
}

func (f *fakePersonnelRepo) Update(ctx context.Context, p personnel.Personnel) error {
	return nil
}

func (f *fakePersonnelRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListByPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.PersonnelID == personnelID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	return nil
}

type fakeTypeRepo struct {
	types []leave.Type
}

func (f *fakeTypeRepo) Create(ctx context.Context, t leave.Type) (leave.Type, error) {
	f.types = append(f.types, t)
	return t, nil
}

func (f *fakeTypeRepo) GetByID(ctx context.Context, id string) (leave.Type, error) {
	for _, t := range f.types {
		if t.ID == id {
			return t, nil
		}
	}
	return leave.Type{}, leave.ErrLeaveTypeNotFound
}

func (f *fakeTypeRepo) List(ctx context.Context) ([]leave.Type, error) {
	return f.types, nil
}

func (f *fakeTypeRepo) Update(ctx context.Context, t leave.Type) error {
	return nil
}

func (f *fakeTypeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeRequestRepo struct {
	requests []leave.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, r leave.Request) (leave.Request, error) {
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeRequestRepo) ListByPersonnel(ctx context.Context, personnelID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if r.PersonnelID == personnelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByPersonnelIDs(ctx context.Context, personnelIDs []string) ([]leave.Request, error) {
	return f.requests, nil
}

func (f *fakeRequestRepo) ListPending(ctx context.Context) ([]leave.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, r leave.Request) error {
	return nil
}

func (f *fakeRequestRepo) CountOverlappingApproved(ctx context.Context, personnelID string, start, end time.Time, excludeID string) (int, error) {
	return 0, nil
}

func (f *fakeRequestRepo) LockForUpdate(ctx context.Context, id string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestMonthlyAttendanceSummary(t *testing.T) {
	people := &fakePersonnelRepo{people: []personnel.Personnel{{ID: "p-1", DepartmentID: "d-1"}}}
	records := &fakeAttendanceRepo{records: []attendance.Record{
		{ID: "a-1", PersonnelID: "p-1", Date: day(2025, time.May, 5), CheckIn: at(2025, time.May, 5, 9), CheckOut: timePtr(at(2025, time.May, 5, 17))},
		{ID: "a-2", PersonnelID: "p-1", Date: day(2025, time.May, 6), CheckIn: at(2025, time.May, 6, 9), CheckOut: timePtr(at(2025, time.May, 6, 13))},
		{ID: "a-3", PersonnelID: "p-1", Date: day(2025, time.May, 7), CheckIn: at(2025, time.May, 7, 9)},
		// Outside the month, must not count.
		{ID: "a-4", PersonnelID: "p-1", Date: day(2025, time.April, 30), CheckIn: at(2025, time.April, 30, 9), CheckOut: timePtr(at(2025, time.April, 30, 17))},
	}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		// 3 days approved leave inside May, plus one spilling in from April.
		{ID: "r-1", PersonnelID: "p-1", StartDate: day(2025, time.May, 12), EndDate: day(2025, time.May, 14), Status: leave.StatusApproved},
		{ID: "r-2", PersonnelID: "p-1", StartDate: day(2025, time.April, 29), EndDate: day(2025, time.May, 1), Status: leave.StatusApproved},
		{ID: "r-3", PersonnelID: "p-1", StartDate: day(2025, time.May, 20), EndDate: day(2025, time.May, 21), Status: leave.StatusPending},
	}}

	balance := leavesvc.NewBalanceService(&fakeTypeRepo{}, requests)
	svc := NewService(people, records, balance, requests)

	summary, err := svc.MonthlyAttendance(context.Background(), "p-1", 2025, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DaysPresent)
	assert.Equal(t, 1, summary.OpenCheckouts)
	assert.InDelta(t, 12.0, summary.TotalHours, 0.001)
	// 3 days from r-1 plus May 1 from r-2; pending r-3 is ignored.
	assert.Equal(t, 4, summary.DaysOnLeave)
}

func TestMonthlyAttendanceUnknownPersonnel(t *testing.T) {
	balance := leavesvc.NewBalanceService(&fakeTypeRepo{}, &fakeRequestRepo{})
	svc := NewService(&fakePersonnelRepo{}, &fakeAttendanceRepo{}, balance, &fakeRequestRepo{})

	_, err := svc.MonthlyAttendance(context.Background(), "missing", 2025, 5)
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}

func TestDepartmentLeaveUsageTotals(t *testing.T) {
	people := &fakePersonnelRepo{people: []personnel.Personnel{
		{ID: "p-1", FullName: "Ada", DepartmentID: "d-1"},
		{ID: "p-2", FullName: "Ben", DepartmentID: "d-1"},
		{ID: "p-3", FullName: "Cleo", DepartmentID: "d-2"},
	}}
	types := &fakeTypeRepo{types: []leave.Type{{ID: "t-1", Name: "Annual", MaxDaysPerYear: intPtr(20)}}}
	requests := &fakeRequestRepo{requests: []leave.Request{
		{ID: "r-1", PersonnelID: "p-1", LeaveTypeID: "t-1", StartDate: day(2025, time.February, 3), EndDate: day(2025, time.February, 7), Status: leave.StatusApproved},
		{ID: "r-2", PersonnelID: "p-2", LeaveTypeID: "t-1", StartDate: day(2025, time.March, 10), EndDate: day(2025, time.March, 11), Status: leave.StatusApproved},
		// Different department, must not appear.
		{ID: "r-3", PersonnelID: "p-3", LeaveTypeID: "t-1", StartDate: day(2025, time.March, 10), EndDate: day(2025, time.March, 14), Status: leave.StatusApproved},
	}}

	balance := leavesvc.NewBalanceService(types, requests)
	svc := NewService(people, &fakeAttendanceRepo{}, balance, requests)

	report, err := svc.DepartmentLeaveUsage(context.Background(), "d-1", 2025)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Ada", report.Rows[0].PersonnelName)
	assert.Equal(t, 5, report.Rows[0].TotalUsedDays)
	assert.Equal(t, "Ben", report.Rows[1].PersonnelName)
	assert.Equal(t, 2, report.Rows[1].TotalUsedDays)
	assert.Equal(t, 7, report.TotalDays)

	require.Len(t, report.ByType, 1)
	assert.Equal(t, "Annual", report.ByType[0].LeaveTypeName)
	assert.Equal(t, 7, report.ByType[0].TotalDays)
}

func TestDepartmentLeaveUsageEmptyDepartment(t *testing.T) {
	balance := leavesvc.NewBalanceService(&fakeTypeRepo{}, &fakeRequestRepo{})
	svc := NewService(&fakePersonnelRepo{}, &fakeAttendanceRepo{}, balance, &fakeRequestRepo{})

	_, err := svc.DepartmentLeaveUsage(context.Background(), "d-9", 2025)
	assert.ErrorIs(t, err, leave.ErrNoDepartmentPersonnel)
}

func TestRenderLeaveUsagePDF(t *testing.T) {
	balance := leavesvc.NewBalanceService(&fakeTypeRepo{}, &fakeRequestRepo{})
	svc := NewService(&fakePersonnelRepo{}, &fakeAttendanceRepo{}, balance, &fakeRequestRepo{})

	pdf, err := svc.RenderLeaveUsagePDF(DepartmentLeaveReport{
		DepartmentID: "d-1",
		Year:         2025,
		Rows: []LeaveUsageRow{
			{PersonnelID: "p-1", PersonnelName: "Ada", TotalUsedDays: 5},
		},
		TotalDays: 5,
	}, "Engineering")
	require.NoError(t, err)

	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
