package leave

import (
	"context"
	"time"
)

// TypeRepository - interface for the leave_types table
type TypeRepository interface {
	Create(ctx context.Context, t Type) (Type, error)
	GetByID(ctx context.Context, id string) (Type, error)
	List(ctx context.Context) ([]Type, error)
	Update(ctx context.Context, t Type) error
	Delete(ctx context.Context, id string) error
}

// RequestRepository - interface for the leave_requests table.
//
// List methods return rows unfiltered by status; callers filter in memory so
// the balance, coverage and validation computations share one view of the
// data.
type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByPersonnel(ctx context.Context, personnelID string) ([]Request, error)
	ListByPersonnelIDs(ctx context.Context, personnelIDs []string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)

	// UpdateStatus writes the status transition fields. It participates in
	// the surrounding transaction when the context carries one.
	UpdateStatus(ctx context.Context, r Request) error

	// CountOverlappingApproved counts approved requests for personnelID
	// whose inclusive range shares a day with [start, end], excluding
	// excludeID. It participates in the surrounding transaction when the
	// context carries one, so approval can re-check under a row lock.
	CountOverlappingApproved(ctx context.Context, personnelID string, start, end time.Time, excludeID string) (int, error)

	// LockForUpdate fetches the request with a row-level lock. Must be
	// called inside a transaction.
	LockForUpdate(ctx context.Context, id string) (Request, error)
}
