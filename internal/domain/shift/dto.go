package shift

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidTimeOfDay(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in HH:MM format",
		})
	}
	if !validator.IsValidTimeOfDay(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID    string  `json:"-"`
	Name  *string `json:"name"`
	Start *string `json:"start"`
	End   *string `json:"end"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Start != nil && !validator.IsValidTimeOfDay(*r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in HH:MM format",
		})
	}
	if r.End != nil && !validator.IsValidTimeOfDay(*r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	PersonnelID string `json:"personnel_id"`
	ShiftID     string `json:"shift_id"`
	Date        string `json:"date"`

	parsedDate time.Time
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	r.parsedDate = date
	return nil
}

// ParsedDate is only valid after Validate succeeds.
func (r *AssignShiftRequest) ParsedDate() time.Time {
	return r.parsedDate
}
