package leave

import (
	"context"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
)

// In-memory repositories for exercising the computation services without a
// database.

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
	for i := range f.types {
		if f.types[i].ID == t.ID {
			f.types[i] = t
			return nil
		}
	}
	return leave.ErrLeaveTypeNotFound
}

func (f *fakeTypeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.types {
		if f.types[i].ID == id {
			f.types = append(f.types[:i], f.types[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveTypeNotFound
}

type fakeRequestRepo struct {
	requests []leave.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, r leave.Request) (leave.Request, error) {
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
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
	ids := make(map[string]struct{}, len(personnelIDs))
	for _, id := range personnelIDs {
		ids[id] = struct{}{}
	}
	var out []leave.Request
	for _, r := range f.requests {
		if _, ok := ids[r.PersonnelID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListPending(ctx context.Context) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if r.Status == leave.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, r leave.Request) error {
	for i := range f.requests {
		if f.requests[i].ID == r.ID {
			f.requests[i] = r
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func (f *fakeRequestRepo) CountOverlappingApproved(ctx context.Context, personnelID string, start, end time.Time, excludeID string) (int, error) {
	count := 0
	for _, r := range f.requests {
		if r.PersonnelID != personnelID || r.ID == excludeID || r.Status != leave.StatusApproved {
			continue
		}
		if leave.RangesOverlap(r.StartDate, r.EndDate, start, end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRequestRepo) LockForUpdate(ctx context.Context, id string) (leave.Request, error) {
	return f.GetByID(ctx, id)
}

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
	for i := range f.people {
		if f.people[i].ID == p.ID {
			f.people[i] = p
			return nil
		}
	}
	return personnel.ErrPersonnelNotFound
}

func (f *fakePersonnelRepo) Delete(ctx context.Context, id string) error {
	for i := range f.people {
		if f.people[i].ID == id {
			f.people = append(f.people[:i], f.people[i+1:]...)
			return nil
		}
	}
	return personnel.ErrPersonnelNotFound
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approvedRequest(id, personnelID, typeID string, start, end time.Time) leave.Request {
	return leave.Request{
		ID:          id,
		PersonnelID: personnelID,
		LeaveTypeID: typeID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.StatusApproved,
	}
}
