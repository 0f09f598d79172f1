package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type personnelRepositoryImpl struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.Repository {
	return &personnelRepositoryImpl{db: db}
}

const personnelColumns = `
	p.id, p.full_name, p.email, p.department_id, p.branch_id, p.position, p.hire_date,
	p.created_at, p.updated_at,
	d.name AS department_name, b.name AS branch_name
`

const personnelJoins = `
	FROM personnel p
	INNER JOIN departments d ON p.department_id = d.id
	LEFT JOIN branches b ON p.branch_id = b.id
`

func scanPersonnel(row pgx.Row) (personnel.Personnel, error) {
	var p personnel.Personnel
	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.DepartmentID, &p.BranchID, &p.Position, &p.HireDate,
		&p.CreatedAt, &p.UpdatedAt,
		&p.DepartmentName, &p.BranchName,
	)
	return p, err
}

func (r *personnelRepositoryImpl) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO personnel (id, full_name, email, department_id, branch_id, position, hire_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.FullName, p.Email, p.DepartmentID, p.BranchID, p.Position, p.HireDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return personnel.Personnel{}, err
	}

	return p, nil
}

func (r *personnelRepositoryImpl) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + personnelJoins + ` WHERE p.id = $1`

	p, err := scanPersonnel(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, err
	}

	return p, nil
}

func (r *personnelRepositoryImpl) List(ctx context.Context) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + personnelJoins + ` ORDER BY p.full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPersonnel(rows)
}

func (r *personnelRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + personnelJoins + ` WHERE p.department_id = $1 ORDER BY p.full_name`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPersonnel(rows)
}

func (r *personnelRepositoryImpl) ListPaged(ctx context.Context, f personnel.Filter) ([]personnel.Personnel, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if f.Name != nil {
		conditions = append(conditions, fmt.Sprintf("p.full_name ILIKE $%d", argPos))
		args = append(args, "%"+*f.Name+"%")
		argPos++
	}
	if f.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("p.department_id = $%d", argPos))
		args = append(args, *f.DepartmentID)
		argPos++
	}
	if f.BranchID != nil {
		conditions = append(conditions, fmt.Sprintf("p.branch_id = $%d", argPos))
		args = append(args, *f.BranchID)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*)` + personnelJoins + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + personnelColumns + personnelJoins + where +
		fmt.Sprintf(" ORDER BY p.full_name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := collectPersonnel(rows)
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *personnelRepositoryImpl) Update(ctx context.Context, p personnel.Personnel) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE personnel
		SET full_name = $2, email = $3, department_id = $4, branch_id = $5, position = $6, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, p.ID, p.FullName, p.Email, p.DepartmentID, p.BranchID, p.Position)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return personnel.ErrPersonnelNotFound
	}
	return nil
}

func (r *personnelRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return personnel.ErrPersonnelNotFound
	}
	return nil
}

func collectPersonnel(rows pgx.Rows) ([]personnel.Personnel, error) {
	var list []personnel.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
