package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	ar.id, ar.personnel_id, ar.branch_id, ar.date, ar.check_in, ar.check_out,
	ar.created_at, ar.updated_at,
	p.full_name AS personnel_name, b.name AS branch_name
`

const attendanceJoins = `
	FROM attendance_records ar
	INNER JOIN personnel p ON ar.personnel_id = p.id
	INNER JOIN branches b ON ar.branch_id = b.id
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.PersonnelID, &rec.BranchID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.PersonnelName, &rec.BranchName,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, personnel_id, branch_id, date, check_in, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rec.PersonnelID, rec.BranchID, rec.Date, rec.CheckIn).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, err
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByPersonnelAndDate(ctx context.Context, personnelID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE ar.personnel_id = $1 AND ar.date = $2`

	rec, err := scanAttendance(q.QueryRow(ctx, query, personnelID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE ar.date = $1 ORDER BY ar.check_in`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepositoryImpl) ListByPersonnel(ctx context.Context, personnelID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE ar.personnel_id = $1 AND ar.date BETWEEN $2 AND $3
		ORDER BY ar.date`

	rows, err := q.Query(ctx, query, personnelID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE attendance_records SET check_out = $2, updated_at = NOW() WHERE id = $1 AND check_out IS NULL`,
		id, at,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.Record, error) {
	var list []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
