package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")

	// ErrDuplicateAssignment is returned when a personnel already has an
	// assignment on the given date.
	ErrDuplicateAssignment = errors.New("personnel already assigned on this date")

	// ErrAssignedOnLeave is returned when assigning a personnel to a date
	// covered by one of their approved leave requests.
	ErrAssignedOnLeave = errors.New("personnel is on approved leave on this date")
)
