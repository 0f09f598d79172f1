package branch

import "time"

// Branch is a physical office location; attendance QR codes are issued per
// branch per day.
type Branch struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
