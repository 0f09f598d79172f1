package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/master/branch"
	"github.com/peoplecore/hrm-backend-go/internal/domain/master/department"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.Repository {
	return &branchRepositoryImpl{db: db}
}

func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, address, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, b.Name, b.Address).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return branch.Branch{}, err
	}

	return b, nil
}

func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, err
	}

	return b, nil
}

func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, address, created_at, updated_at FROM branches ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *branchRepositoryImpl) Update(ctx context.Context, b branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE branches SET name = $2, address = $3, updated_at = NOW() WHERE id = $1`,
		b.ID, b.Name, b.Address,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return branch.ErrBranchNotFound
	}
	return nil
}

func (r *branchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return branch.ErrBranchNotFound
	}
	return nil
}

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, branch_id, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.BranchID).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return department.Department{}, err
	}

	return d, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, branch_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.BranchID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, branch_id, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.BranchID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE departments SET name = $2, branch_id = $3, updated_at = NOW() WHERE id = $1`,
		d.ID, d.Name, d.BranchID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
