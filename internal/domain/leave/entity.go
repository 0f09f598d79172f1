package leave

import "time"

// Status of a leave request. Requests start pending and transition exactly
// once, to approved or rejected.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Type describes a category of leave (annual, sick, unpaid, ...).
// MaxDaysPerYear is nil for unlimited-entitlement types; those report an
// entitlement of zero in balance summaries and are tracked by usage only.
type Type struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MaxDaysPerYear    *int   `json:"max_days_per_year"`
	CarryOverEligible bool   `json:"carry_over_eligible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request is a single leave request. StartDate and EndDate are inclusive
// calendar dates with zero time-of-day components.
type Request struct {
	ID          string    `json:"id"`
	PersonnelID string    `json:"personnel_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      Status    `json:"status"`
	Reason      *string   `json:"reason,omitempty"`

	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined for display.
	PersonnelName *string `json:"personnel_name,omitempty"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
}

// DurationDays returns the inclusive day count of the request.
func (r Request) DurationDays() int {
	d, err := InclusiveDays(r.StartDate, r.EndDate)
	if err != nil {
		return 0
	}
	return d
}

// BalanceEntry is the computed per-type balance for one personnel and year.
type BalanceEntry struct {
	LeaveTypeID       string `json:"leave_type_id"`
	LeaveTypeName     string `json:"leave_type_name"`
	EntitledDays      int    `json:"entitled_days"`
	UsedDays          int    `json:"used_days"`
	RemainingDays     int    `json:"remaining_days"`
	CarryOverDays     int    `json:"carry_over_days"`
	TotalAvailable    int    `json:"total_available"`
	CarryOverEligible bool   `json:"carry_over_eligible"`
}

// BalanceSummary aggregates all per-type balances for one personnel and year.
type BalanceSummary struct {
	PersonnelID   string         `json:"personnel_id"`
	Year          int            `json:"year"`
	Balances      []BalanceEntry `json:"balances"`
	TotalUsedDays int            `json:"total_used_days"`
}

// CoverageDay is the staffing picture for a single calendar day within a
// scope of personnel.
type CoverageDay struct {
	Date            time.Time `json:"date"`
	TotalPersonnel  int       `json:"total_personnel"`
	OnLeave         int       `json:"on_leave"`
	Available       int       `json:"available"`
	CoveragePercent int       `json:"coverage_percent"`
	Adequate        bool      `json:"adequate"`
	OnLeaveIDs      []string  `json:"on_leave_ids,omitempty"`
}

// CoverageSummary is the per-day coverage over a date range, one entry per
// calendar day in chronological order.
type CoverageSummary struct {
	DepartmentID    string        `json:"department_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	TotalPersonnel  int           `json:"total_personnel"`
	Days            []CoverageDay `json:"days"`
	AverageCoverage int           `json:"average_coverage"`
	AdequateDays    int           `json:"adequate_days"`
	CriticalDays    int           `json:"critical_days"`
}

// ValidationIssue is one finding produced by candidate-request validation.
// Severity is "error", "warning" or "info".
type ValidationIssue struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ValidationResult collects every finding for a candidate request. All rules
// run; errors do not short-circuit later rules.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
	Info     []ValidationIssue `json:"info"`
}

func (r *ValidationResult) AddError(code, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Severity: "error", Code: code, Message: message})
	r.Valid = false
}

func (r *ValidationResult) AddWarning(code, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Severity: "warning", Code: code, Message: message})
}

func (r *ValidationResult) AddInfo(code, message string) {
	r.Info = append(r.Info, ValidationIssue{Severity: "info", Code: code, Message: message})
}

// Conflict describes one approved request overlapping the request under
// review.
type Conflict struct {
	LeaveRequestID string    `json:"leave_request_id"`
	PersonnelID    string    `json:"personnel_id"`
	PersonnelName  string    `json:"personnel_name,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	OverlapDays    int       `json:"overlap_days"`
}

// StaffingInfo summarizes organization-wide headroom for the days of the
// request under review.
type StaffingInfo struct {
	TotalPersonnel  int    `json:"total_personnel"`
	MinimumRequired int    `json:"minimum_required"`
	WorstDayOnLeave int    `json:"worst_day_on_leave"`
	WorstDayDate    string `json:"worst_day_date,omitempty"`
}

// ConflictReport is the approver-facing pre-approval check.
type ConflictReport struct {
	LeaveRequestID    string       `json:"leave_request_id"`
	RequestedDays     int          `json:"requested_days"`
	HasConflicts      bool         `json:"has_conflicts"`
	Conflicts         []Conflict   `json:"conflicts"`
	HasStaffingIssues bool         `json:"has_staffing_issues"`
	StaffingInfo      StaffingInfo `json:"staffing_info"`
	CanApprove        bool         `json:"can_approve"`
}
