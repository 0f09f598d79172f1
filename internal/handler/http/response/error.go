package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/domain/shift"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
	"github.com/peoplecore/hrm-backend-go/internal/service/auth"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidRefresh):
		Unauthorized(w, "Invalid or expired refresh token")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Insufficient role")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Personnel and master data
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrReversedDateRange):
		BadRequest(w, "End date is before start date", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping approved leave exists")
	case errors.Is(err, leave.ErrNoDepartmentPersonnel):
		BadRequest(w, "Department has no personnel", nil)

	// Shifts
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrDuplicateAssignment):
		Conflict(w, "Personnel already assigned on this date")
	case errors.Is(err, shift.ErrAssignedOnLeave):
		Conflict(w, "Personnel is on approved leave on this date")

	// Attendance
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidQRToken):
		Unauthorized(w, "Invalid or expired QR token")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in found for today")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
