package leave

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateTypeRequest struct {
	Name              string `json:"name"`
	MaxDaysPerYear    *int   `json:"max_days_per_year,omitempty"`
	CarryOverEligible bool   `json:"carry_over_eligible"`
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MaxDaysPerYear != nil && *r.MaxDaysPerYear <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_per_year",
			Message: "max_days_per_year must be greater than zero when set",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTypeRequest struct {
	ID                string  `json:"-"`
	Name              *string `json:"name,omitempty"`
	MaxDaysPerYear    *int    `json:"max_days_per_year,omitempty"`
	CarryOverEligible *bool   `json:"carry_over_eligible,omitempty"`
}

func (r *UpdateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.MaxDaysPerYear != nil && *r.MaxDaysPerYear <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_days_per_year",
			Message: "max_days_per_year must be greater than zero when set",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitRequest carries a new leave request. Dates are YYYY-MM-DD strings on
// the wire and parsed during Validate.
type SubmitRequest struct {
	PersonnelID string  `json:"personnel_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason,omitempty"`

	parsedStart time.Time
	parsedEnd   time.Time
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.parsedStart = DateOnly(start)
	r.parsedEnd = DateOnly(end)
	return nil
}

// Dates returns the parsed range. Only valid after Validate succeeds.
func (r *SubmitRequest) Dates() (start, end time.Time) {
	return r.parsedStart, r.parsedEnd
}

type ApproveRequest struct {
	LeaveRequestID string `json:"-"`
	ApproverID     string `json:"-"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	LeaveRequestID  string `json:"-"`
	ApproverID      string `json:"-"`
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}
	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}
	if validator.IsEmpty(r.RejectionReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRequest carries a candidate request for pre-submission validation.
// Reversed date ranges pass Validate on purpose; the validation rules report
// them as a finding instead.
type ValidateRequest struct {
	PersonnelID      string `json:"personnel_id"`
	LeaveTypeID      string `json:"leave_type_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	ExcludeRequestID string `json:"exclude_request_id,omitempty"`

	parsedStart time.Time
	parsedEnd   time.Time
}

func (r *ValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.parsedStart = DateOnly(start)
	r.parsedEnd = DateOnly(end)
	return nil
}

func (r *ValidateRequest) Dates() (start, end time.Time) {
	return r.parsedStart, r.parsedEnd
}

// CoverageQuery parameterizes a coverage computation over a department and
// inclusive date range.
type CoverageQuery struct {
	DepartmentID string
	StartDate    string
	EndDate      string

	parsedStart time.Time
	parsedEnd   time.Time
}

func (q *CoverageQuery) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	start, okStart := validator.IsValidDate(q.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(q.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	q.parsedStart = DateOnly(start)
	q.parsedEnd = DateOnly(end)
	return nil
}

func (q *CoverageQuery) Dates() (start, end time.Time) {
	return q.parsedStart, q.parsedEnd
}
