package branch

import "context"

// Repository - interface for the branches table
type Repository interface {
	Create(ctx context.Context, b Branch) (Branch, error)
	GetByID(ctx context.Context, id string) (Branch, error)
	List(ctx context.Context) ([]Branch, error)
	Update(ctx context.Context, b Branch) error
	Delete(ctx context.Context, id string) error
}
