package shift

import (
	"context"
	"time"
)

// Repository - interface for the shifts table
type Repository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string) error
}

// AssignmentRepository - interface for the shift_assignments table
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	ListByDate(ctx context.Context, date time.Time) ([]Assignment, error)
	ListByPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]Assignment, error)
	ExistsForPersonnelOnDate(ctx context.Context, personnelID string, date time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}
