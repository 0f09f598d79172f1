package personnel

import "context"

// Repository - interface for the personnel table.
//
// List and ListByDepartment return full collections; the leave computation
// services filter and count in memory on every call, they never push
// aggregation into the store.
type Repository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	GetByID(ctx context.Context, id string) (Personnel, error)
	List(ctx context.Context) ([]Personnel, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]Personnel, error)
	ListPaged(ctx context.Context, filter Filter) ([]Personnel, int64, error)
	Update(ctx context.Context, p Personnel) error
	Delete(ctx context.Context, id string) error
}

// Filter narrows ListPaged results.
type Filter struct {
	Name         *string
	DepartmentID *string
	BranchID     *string
	Page         int
	Limit        int
}
