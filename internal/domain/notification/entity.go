package notification

import "time"

// Kind tags what happened; consumers use it to pick templates and routes.
type Kind string

const (
	KindLeaveSubmitted Kind = "leave.submitted"
	KindLeaveApproved  Kind = "leave.approved"
	KindLeaveRejected  Kind = "leave.rejected"
	KindShiftAssigned  Kind = "shift.assigned"
)

// Notification is a persisted in-app notification for one user.
type Notification struct {
	ID      string     `json:"id"`
	UserID  string     `json:"user_id"`
	Kind    Kind       `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
	ReadAt  *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EmailMessage is the payload published to the mail queue and consumed by
// the mailer worker.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
