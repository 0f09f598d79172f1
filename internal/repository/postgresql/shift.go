package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/shift"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.Start, s.End).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Start, &s.End, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}

	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, start_time, end_time, created_at, updated_at FROM shifts ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.Start, &s.End, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE shifts SET name = $2, start_time = $3, end_time = $4, updated_at = NOW() WHERE id = $1`,
		s.ID, s.Name, s.Start, s.End,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrShiftNotFound
	}
	return nil
}

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	sa.id, sa.personnel_id, sa.shift_id, sa.date, sa.created_at, sa.updated_at,
	p.full_name AS personnel_name, s.name AS shift_name
`

const assignmentJoins = `
	FROM shift_assignments sa
	INNER JOIN personnel p ON sa.personnel_id = p.id
	INNER JOIN shifts s ON sa.shift_id = s.id
`

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(
		&a.ID, &a.PersonnelID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
		&a.PersonnelName, &a.ShiftName,
	)
	return a, err
}

func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, personnel_id, shift_id, date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.PersonnelID, a.ShiftID, a.Date).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return shift.Assignment{}, err
	}

	return a, nil
}

func (r *shiftAssignmentRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + ` WHERE sa.id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, err
	}

	return a, nil
}

func (r *shiftAssignmentRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + ` WHERE sa.date = $1 ORDER BY s.start_time, p.full_name`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *shiftAssignmentRepositoryImpl) ListByPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE sa.personnel_id = $1 AND sa.date BETWEEN $2 AND $3
		ORDER BY sa.date`

	rows, err := q.Query(ctx, query, personnelID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *shiftAssignmentRepositoryImpl) ExistsForPersonnelOnDate(ctx context.Context, personnelID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM shift_assignments WHERE personnel_id = $1 AND date = $2)`,
		personnelID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}

func collectAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var list []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
