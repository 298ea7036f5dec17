package attendance

import (
	"context"
	"fmt"
	"io"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
	"github.com/glassdash/crm-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) DaySheet(ctx context.Context, date string) (attendance.DaySheet, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return attendance.DaySheet{}, attendance.ErrInvalidDate
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.DaySheet{}, err
	}
	ledger, err := s.attendanceRepo.Ledger(ctx)
	if err != nil {
		return attendance.DaySheet{}, err
	}

	sheet := attendance.DaySheet{
		Date:    date,
		Total:   len(employees),
		Entries: make([]attendance.DayEntry, 0, len(employees)),
	}
	for _, e := range employees {
		status := ledger.StatusOf(date, e.ID)
		if status == attendance.StatusPresent {
			sheet.Present++
		}
		sheet.Entries = append(sheet.Entries, attendance.DayEntry{
			EmployeeID: e.ID,
			Name:       e.Name,
			Role:       e.Role,
			Status:     status,
		})
	}
	return sheet, nil
}

// Toggle flips one employee's status for one day. The write goes through
// Ledger.Mark, so the resulting ledger shape is identical to a
// bulk-imported entry for the same pair.
func (s *AttendanceServiceImpl) Toggle(ctx context.Context, req attendance.ToggleRequest) (attendance.DayEntry, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayEntry{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return attendance.DayEntry{}, err
	}
	var subject employee.Employee
	found := false
	for _, e := range employees {
		if e.ID == req.EmployeeID {
			subject = e
			found = true
			break
		}
	}
	if !found {
		return attendance.DayEntry{}, employee.ErrEmployeeNotFound
	}

	ledger, err := s.attendanceRepo.Ledger(ctx)
	if err != nil {
		return attendance.DayEntry{}, err
	}

	next := attendance.StatusPresent
	if ledger.StatusOf(req.Date, req.EmployeeID) == attendance.StatusPresent {
		next = attendance.StatusAbsent
	}
	ledger.Mark(req.Date, req.EmployeeID, next)

	if err := s.attendanceRepo.Save(ctx, ledger); err != nil {
		return attendance.DayEntry{}, err
	}
	return attendance.DayEntry{
		EmployeeID: subject.ID,
		Name:       subject.Name,
		Role:       subject.Role,
		Status:     next,
	}, nil
}

// merge folds raw rows into the ledger. Rows are skipped when the Date or
// Status cell is empty, the subject name resolves to zero or multiple
// employees, or the date does not parse. Later rows overwrite earlier ones
// for the same (day, employee) pair.
func merge(ledger attendance.Ledger, rows []spreadsheet.Row, employees []employee.Employee) (applied int) {
	for _, row := range rows {
		rawDate := row.Get("Date", "date")
		rawStatus := row.Get("Status", "status")
		if rawDate == "" || rawStatus == "" {
			continue
		}

		subject, ok := matchEmployee(row.Get("Name", "name"), employees)
		if !ok {
			continue
		}
		day, err := normalizeDay(rawDate)
		if err != nil {
			continue
		}

		ledger.Mark(day, subject.ID, normalizeStatus(rawStatus))
		applied++
	}
	return applied
}

// Import buffers the merge on a copy of the ledger and commits it with a
// single store write: a batch that fails mid-parse leaves no partial state,
// while row-level failures only lower the applied count.
func (s *AttendanceServiceImpl) Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error) {
	rows, err := spreadsheet.Parse(r)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}
	ledger, err := s.attendanceRepo.Ledger(ctx)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}

	merged := ledger.Clone()
	applied := merge(merged, rows, employees)

	if err := s.attendanceRepo.Save(ctx, merged); err != nil {
		return spreadsheet.ImportResult{}, err
	}

	return spreadsheet.ImportResult{
		Accepted: applied,
		Rejected: len(rows) - applied,
		Message:  fmt.Sprintf("Updated %d attendance records", applied),
	}, nil
}
