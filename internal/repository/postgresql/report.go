package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/report"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// CountDaily implements report.ReportRepository. On-time means the clock-in
// time of day is at or before the cutoff; cutoff arrives as "HH:MM" and is
// compared in the database's time zone.
func (r *reportRepository) CountDaily(ctx context.Context, date time.Time, cutoff string, department string) (report.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(CASE WHEN a.time_in::time <= $2::time THEN 1 ELSE 0 END), 0),
			   COALESCE(SUM(CASE WHEN a.overtime THEN 1 ELSE 0 END), 0)
		FROM attendance a
		JOIN employees e ON e.employee_no = a.employee_no
		WHERE a.attendance_date = $1
	`
	args := []interface{}{date, cutoff}
	if department != "" {
		query += ` AND e.department = $3`
		args = append(args, department)
	}

	var counts report.DailyCounts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.Present, &counts.OnTime, &counts.OvertimeCount); err != nil {
		return report.DailyCounts{}, fmt.Errorf("failed to count daily attendance: %w", err)
	}

	return counts, nil
}

// CountDailyRange implements report.ReportRepository.
func (r *reportRepository) CountDailyRange(ctx context.Context, from, to time.Time, cutoff string, department string) (map[string]report.DailyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.attendance_date,
			   COUNT(*),
			   COALESCE(SUM(CASE WHEN a.time_in::time <= $3::time THEN 1 ELSE 0 END), 0),
			   COALESCE(SUM(CASE WHEN a.overtime THEN 1 ELSE 0 END), 0)
		FROM attendance a
		JOIN employees e ON e.employee_no = a.employee_no
		WHERE a.attendance_date BETWEEN $1 AND $2
	`
	args := []interface{}{from, to, cutoff}
	if department != "" {
		query += ` AND e.department = $4`
		args = append(args, department)
	}
	query += ` GROUP BY a.attendance_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance range: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string]report.DailyCounts)
	for rows.Next() {
		var day time.Time
		var counts report.DailyCounts
		if err := rows.Scan(&day, &counts.Present, &counts.OnTime, &counts.OvertimeCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily counts: %w", err)
		}
		byDay[day.Format("2006-01-02")] = counts
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily counts: %w", err)
	}

	return byDay, nil
}
