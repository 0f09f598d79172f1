package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.TypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, t leave.Type) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, name, max_days_per_year, carry_over_eligible, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.MaxDaysPerYear, t.CarryOverEligible).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return leave.Type{}, err
	}

	return t, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Type, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, max_days_per_year, carry_over_eligible, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var t leave.Type
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.MaxDaysPerYear, &t.CarryOverEligible, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Type{}, leave.ErrLeaveTypeNotFound
		}
		return leave.Type{}, err
	}

	return t, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.Type, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, max_days_per_year, carry_over_eligible, created_at, updated_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []leave.Type
	for rows.Next() {
		var t leave.Type
		if err := rows.Scan(&t.ID, &t.Name, &t.MaxDaysPerYear, &t.CarryOverEligible, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, t leave.Type) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $2, max_days_per_year = $3, carry_over_eligible = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, t.ID, t.Name, t.MaxDaysPerYear, t.CarryOverEligible)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
