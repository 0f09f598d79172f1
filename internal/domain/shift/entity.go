package shift

import "time"

// Shift is a reusable work-shift template (e.g. "Morning 08:00-16:00").
// Start and End are HH:MM clock strings; End before Start means the shift
// crosses midnight.
type Shift struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Assignment places one personnel on one shift for one calendar date.
type Assignment struct {
	ID          string    `json:"id"`
	PersonnelID string    `json:"personnel_id"`
	ShiftID     string    `json:"shift_id"`
	Date        time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display.
	PersonnelName *string `json:"personnel_name,omitempty"`
	ShiftName     *string `json:"shift_name,omitempty"`
}
