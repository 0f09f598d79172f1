package personnel

import "time"

// Personnel is an employee record. Department assignment drives coverage
// computations; branch assignment drives QR attendance.
type Personnel struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	DepartmentID string    `json:"department_id"`
	BranchID     *string   `json:"branch_id,omitempty"`
	Position     *string   `json:"position,omitempty"`
	HireDate     time.Time `json:"hire_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for responses
	DepartmentName *string `json:"department_name,omitempty"`
	BranchName     *string `json:"branch_name,omitempty"`
}
