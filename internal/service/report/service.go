package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/personnel"
	leavesvc "github.com/peoplecore/hrm-backend-go/internal/service/leave"
)

// AttendanceSummary is one personnel's attendance for a calendar month.
type AttendanceSummary struct {
	PersonnelID   string  `json:"personnel_id"`
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	DaysPresent   int     `json:"days_present"`
	DaysOnLeave   int     `json:"days_on_leave"`
	TotalHours    float64 `json:"total_hours"`
	OpenCheckouts int     `json:"open_checkouts"`
}

// LeaveUsageRow is one personnel's leave usage within a department report.
type LeaveUsageRow struct {
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	TotalUsedDays int    `json:"total_used_days"`
}

// TypeUsage aggregates used days across a department for one leave type.
type TypeUsage struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	TotalDays     int    `json:"total_days"`
}

// DepartmentLeaveReport aggregates leave usage for one department and year.
type DepartmentLeaveReport struct {
	DepartmentID string          `json:"department_id"`
	Year         int             `json:"year"`
	Rows         []LeaveUsageRow `json:"rows"`
	ByType       []TypeUsage     `json:"by_type"`
	TotalDays    int             `json:"total_days"`
}

type Service struct {
	personnelRepository  personnel.Repository
	attendanceRepository attendance.Repository
	balanceService       *leavesvc.BalanceService
	requestRepository    leave.RequestRepository
}

func NewService(
	personnelRepository personnel.Repository,
	attendanceRepository attendance.Repository,
	balanceService *leavesvc.BalanceService,
	requestRepository leave.RequestRepository,
) *Service {
	return &Service{
		personnelRepository:  personnelRepository,
		attendanceRepository: attendanceRepository,
		balanceService:       balanceService,
		requestRepository:    requestRepository,
	}
}

// MonthlyAttendance summarizes one personnel's attendance records and
// approved leave days within a month.
func (s *Service) MonthlyAttendance(ctx context.Context, personnelID string, year, month int) (AttendanceSummary, error) {
	if _, err := s.personnelRepository.GetByID(ctx, personnelID); err != nil {
		return AttendanceSummary{}, fmt.Errorf("failed to get personnel: %w", err)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.attendanceRepository.ListByPersonnel(ctx, personnelID, from, to)
	if err != nil {
		return AttendanceSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := AttendanceSummary{
		PersonnelID: personnelID,
		Year:        year,
		Month:       month,
		DaysPresent: len(records),
	}
	for _, rec := range records {
		if rec.CheckOut == nil {
			summary.OpenCheckouts++
			continue
		}
		summary.TotalHours += rec.CheckOut.Sub(rec.CheckIn).Hours()
	}

	requests, err := s.requestRepository.ListByPersonnel(ctx, personnelID)
	if err != nil {
		return AttendanceSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	for _, r := range requests {
		if r.Status != leave.StatusApproved {
			continue
		}
		summary.DaysOnLeave += leave.OverlapDays(r.StartDate, r.EndDate, from, to)
	}

	return summary, nil
}

// DepartmentLeaveUsage builds the per-personnel leave usage rows for one
// department and year from recomputed balances.
func (s *Service) DepartmentLeaveUsage(ctx context.Context, departmentID string, year int) (DepartmentLeaveReport, error) {
	people, err := s.personnelRepository.ListByDepartment(ctx, departmentID)
	if err != nil {
		return DepartmentLeaveReport{}, fmt.Errorf("failed to list department personnel: %w", err)
	}
	if len(people) == 0 {
		return DepartmentLeaveReport{}, leave.ErrNoDepartmentPersonnel
	}

	report := DepartmentLeaveReport{
		DepartmentID: departmentID,
		Year:         year,
		Rows:         make([]LeaveUsageRow, 0, len(people)),
	}

	typeDays := make(map[string]*TypeUsage)
	var typeOrder []string
	for _, p := range people {
		balance, err := s.balanceService.ComputeBalance(ctx, p.ID, year)
		if err != nil {
			return DepartmentLeaveReport{}, fmt.Errorf("failed to compute balance for %s: %w", p.ID, err)
		}
		report.Rows = append(report.Rows, LeaveUsageRow{
			PersonnelID:   p.ID,
			PersonnelName: p.FullName,
			TotalUsedDays: balance.TotalUsedDays,
		})
		report.TotalDays += balance.TotalUsedDays

		for _, entry := range balance.Balances {
			usage, ok := typeDays[entry.LeaveTypeID]
			if !ok {
				usage = &TypeUsage{LeaveTypeID: entry.LeaveTypeID, LeaveTypeName: entry.LeaveTypeName}
				typeDays[entry.LeaveTypeID] = usage
				typeOrder = append(typeOrder, entry.LeaveTypeID)
			}
			usage.TotalDays += entry.UsedDays
		}
	}

	report.ByType = make([]TypeUsage, 0, len(typeOrder))
	for _, id := range typeOrder {
		report.ByType = append(report.ByType, *typeDays[id])
	}

	return report, nil
}

// RenderLeaveUsagePDF renders a department leave report as a PDF document.
func (s *Service) RenderLeaveUsagePDF(report DepartmentLeaveReport, departmentName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Usage Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", departmentName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Year: %d", report.Year))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Personnel", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Used Days", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range report.Rows {
		pdf.CellFormat(120, 8, row.PersonnelName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", row.TotalUsedDays), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", report.TotalDays), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
