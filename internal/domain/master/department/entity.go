package department

import "time"

// Department groups personnel for staffing coverage purposes.
type Department struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BranchID *string `json:"branch_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
