package user

import "context"

// Repository - interface for the users table
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	GetByPersonnelID(ctx context.Context, personnelID string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, u User) error
}

// RefreshTokenRepository - interface for the refresh_tokens table
type RefreshTokenRepository interface {
	Create(ctx context.Context, t RefreshToken) (RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
