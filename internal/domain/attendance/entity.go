package attendance

import "time"

// Record is one personnel's attendance for one calendar date. CheckOut stays
// nil until the personnel scans out.
type Record struct {
	ID          string     `json:"id"`
	PersonnelID string     `json:"personnel_id"`
	BranchID    string     `json:"branch_id"`
	Date        time.Time  `json:"date"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display.
	PersonnelName *string `json:"personnel_name,omitempty"`
	BranchName    *string `json:"branch_name,omitempty"`
}

// QRCode is a short-lived branch check-in token together with its rendered
// PNG image.
type QRCode struct {
	BranchID  string    `json:"branch_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ImagePNG  []byte    `json:"-"`
}
