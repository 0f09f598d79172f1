package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.personnel_id, lr.leave_type_id, lr.start_date, lr.end_date,
	lr.status, lr.reason,
	lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at,
	p.full_name AS personnel_name, lt.name AS leave_type_name
`

const leaveRequestJoins = `
	FROM leave_requests lr
	INNER JOIN personnel p ON lr.personnel_id = p.id
	INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var lr leave.Request
	err := row.Scan(
		&lr.ID, &lr.PersonnelID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate,
		&lr.Status, &lr.Reason,
		&lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.PersonnelName, &lr.LeaveTypeName,
	)
	return lr, err
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, personnel_id, leave_type_id, start_date, end_date,
			status, reason, submitted_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, NOW(), NOW(), NOW()
		) RETURNING id, submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.PersonnelID, request.LeaveTypeID, request.StartDate, request.EndDate,
		request.Status, request.Reason,
	).Scan(&request.ID, &request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByPersonnel(ctx context.Context, personnelID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.personnel_id = $1
		ORDER BY lr.submitted_at DESC`

	rows, err := q.Query(ctx, query, personnelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListByPersonnelIDs(ctx context.Context, personnelIDs []string) ([]leave.Request, error) {
	if len(personnelIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.personnel_id = ANY($1)
		ORDER BY lr.submitted_at DESC`

	rows, err := q.Query(ctx, query, personnelIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = 'pending'
		ORDER BY lr.submitted_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		request.ID, request.Status, request.ApprovedBy, request.ApprovedAt, request.RejectionReason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CountOverlappingApproved(ctx context.Context, personnelID string, start, end time.Time, excludeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE personnel_id = $1
		  AND status = 'approved'
		  AND id <> $2
		  AND start_date <= $4
		  AND end_date >= $3
	`

	var count int
	err := q.QueryRow(ctx, query, personnelID, excludeID, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *leaveRequestRepositoryImpl) LockForUpdate(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, personnel_id, leave_type_id, start_date, end_date,
		       status, reason,
		       approved_by, approved_at, rejection_reason,
		       submitted_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
		FOR UPDATE
	`

	var lr leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.PersonnelID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate,
		&lr.Status, &lr.Reason,
		&lr.ApprovedBy, &lr.ApprovedAt, &lr.RejectionReason,
		&lr.SubmittedAt, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}

	return lr, nil
}
