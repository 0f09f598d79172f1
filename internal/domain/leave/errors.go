package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeNameExists  = errors.New("leave type name already exists")
	ErrLeaveRequestNotFound = errors.New("leave request not found")

	// ErrReversedDateRange is returned whenever an end date precedes a start
	// date, both for candidate requests and for stored data encountered
	// during balance or coverage computation.
	ErrReversedDateRange = errors.New("end date is before start date")

	// ErrAlreadyProcessed is returned when approving or rejecting a request
	// that is no longer pending.
	ErrAlreadyProcessed = errors.New("leave request already processed")

	// ErrOverlappingLeave is returned when an approval would produce two
	// approved requests for the same personnel sharing a calendar day.
	ErrOverlappingLeave = errors.New("overlapping approved leave exists")

	// ErrNoDepartmentPersonnel is returned when coverage is requested for a
	// scope with no personnel; coverage over an empty scope is undefined.
	ErrNoDepartmentPersonnel = errors.New("department has no personnel")
)
