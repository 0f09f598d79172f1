package department

import "context"

// Repository - interface for the departments table
type Repository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, d Department) error
	Delete(ctx context.Context, id string) error
}
