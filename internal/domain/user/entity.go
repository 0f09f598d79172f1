package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User is an account that can sign in; most users are linked to a personnel
// record, admins may exist without one.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	PersonnelID  *string
	GoogleID     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RefreshToken is a persisted refresh token session.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
