package report

import (
	"context"
	"math"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
	"github.com/fptrack/attendance-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo   report.ReportRepository
	employeeRepo employee.EmployeeRepository
	onTimeCutoff string
}

func NewReportService(reportRepo report.ReportRepository, employeeRepo employee.EmployeeRepository, onTimeCutoff string) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		employeeRepo: employeeRepo,
		onTimeCutoff: onTimeCutoff,
	}
}

// DailySummary implements report.ReportService. Headcount and attendance
// aggregates are independent queries and run in parallel.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, date time.Time, department string) (report.DailySummary, error) {
	var counts report.DailyCounts
	var total int

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counts, err = s.reportRepo.CountDaily(gCtx, date, s.onTimeCutoff, department)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.employeeRepo.Count(gCtx, department)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.DailySummary{}, err
	}

	summary := report.DailySummary{
		Date:           date.Format("2006-01-02"),
		TotalEmployees: total,
		Present:        counts.Present,
		Absent:         total - counts.Present,
		OnTime:         counts.OnTime,
		Late:           counts.Present - counts.OnTime,
		OvertimeCount:  counts.OvertimeCount,
	}
	if summary.Absent < 0 {
		summary.Absent = 0
	}
	if total > 0 {
		summary.AttendanceRate = math.Round(float64(counts.Present) / float64(total) * 100)
	}

	return summary, nil
}

// MonthlySeries implements report.ReportService. The series spans every day
// of the month in order; days with no attendance rows come back zero-filled.
func (s *ReportServiceImpl) MonthlySeries(ctx context.Context, year int, month time.Month, department string) (report.MonthlySeries, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var byDay map[string]report.DailyCounts
	var total int

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		byDay, err = s.reportRepo.CountDailyRange(gCtx, first, last, s.onTimeCutoff, department)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = s.employeeRepo.Count(gCtx, department)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.MonthlySeries{}, err
	}

	series := report.MonthlySeries{
		Year:           year,
		Month:          int(month),
		Department:     department,
		TotalEmployees: total,
		Days:           make([]report.DayPoint, 0, last.Day()),
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		counts := byDay[key]
		absent := total - counts.Present
		if absent < 0 {
			absent = 0
		}
		series.Days = append(series.Days, report.DayPoint{
			Date:          key,
			Present:       counts.Present,
			Absent:        absent,
			OnTime:        counts.OnTime,
			Late:          counts.Present - counts.OnTime,
			OvertimeCount: counts.OvertimeCount,
		})
	}

	return series, nil
}
