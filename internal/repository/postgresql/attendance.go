package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_no, attendance_date, time_in, time_out,
	   total_work_minutes, overtime, overtime_minutes, device_id, created_at, updated_at`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeNo, &a.AttendanceDate, &a.TimeIn, &a.TimeOut,
		&a.TotalWorkMinutes, &a.Overtime, &a.OvertimeMinutes, &a.DeviceID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateClockIn implements attendance.AttendanceRepository. The unique
// constraint on (employee_no, attendance_date) decides races between
// concurrent clock-ins; the loser gets zero rows back and reports
// ErrAlreadyClockedIn.
func (r *attendanceRepository) CreateClockIn(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance (id, employee_no, attendance_date, time_in, device_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_no, attendance_date) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeNo, a.AttendanceDate, a.TimeIn, a.DeviceID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyClockedIn
		}
		return fmt.Errorf("failed to create clock-in: %w", err)
	}

	return nil
}

// SetClockOut implements attendance.AttendanceRepository. The WHERE clause
// only matches an open record, so only one of several concurrent clock-outs
// can succeed.
func (r *attendanceRepository) SetClockOut(ctx context.Context, id string, timeOut time.Time, workMinutes int, overtime bool, overtimeMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET time_out = $2, total_work_minutes = $3, overtime = $4, overtime_minutes = $5,
			updated_at = NOW()
		WHERE id = $1 AND time_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, timeOut, workMinutes, overtime, overtimeMinutes)
	if err != nil {
		return fmt.Errorf("failed to set clock-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}

	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeNo string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_no = $1 AND attendance_date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeNo, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeNo != "" {
		addCondition("a.employee_no = $%d", filter.EmployeeNo)
	}
	if filter.Department != "" {
		addCondition("e.department = $%d", filter.Department)
	}
	if filter.DateFrom != nil {
		addCondition("a.attendance_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("a.attendance_date <= $%d", *filter.DateTo)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance a
		JOIN employees e ON e.employee_no = a.employee_no` + where

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := `
		SELECT a.id, a.employee_no, a.attendance_date, a.time_in, a.time_out,
			   a.total_work_minutes, a.overtime, a.overtime_minutes, a.device_id,
			   a.created_at, a.updated_at
		FROM attendance a
		JOIN employees e ON e.employee_no = a.employee_no` + where + `
		ORDER BY a.attendance_date DESC, a.employee_no ASC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeNo, &a.AttendanceDate, &a.TimeIn, &a.TimeOut,
			&a.TotalWorkMinutes, &a.Overtime, &a.OvertimeMinutes, &a.DeviceID,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, total, nil
}

func (r *attendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET time_in = $2, time_out = $3, total_work_minutes = $4,
			overtime = $5, overtime_minutes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.TimeIn, a.TimeOut, a.TotalWorkMinutes, a.Overtime, a.OvertimeMinutes,
	).Scan(&a.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

func (r *attendanceRepository) DeleteByEmployeeNo(ctx context.Context, employeeNo string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_no = $1`, employeeNo); err != nil {
		return fmt.Errorf("failed to delete attendance by employee_no: %w", err)
	}

	return nil
}
