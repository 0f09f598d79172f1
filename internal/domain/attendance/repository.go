package attendance

import (
	"context"
	"time"
)

// Repository - interface for the attendance_records table
type Repository interface {
	Create(ctx context.Context, r Record) (Record, error)
	GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]Record, error)
	SetCheckOut(ctx context.Context, id string, at time.Time) error
}

// TokenStore holds active QR check-in tokens with a TTL. Backed by Redis.
type TokenStore interface {
	// Put stores token -> branchID for ttl.
	Put(ctx context.Context, token, branchID string, ttl time.Duration) error
	// BranchFor resolves a token to its branch, or ErrInvalidQRToken.
	BranchFor(ctx context.Context, token string) (string, error)
}
