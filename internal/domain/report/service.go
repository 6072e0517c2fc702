package report

import (
	"context"
	"time"
)

type ReportService interface {
	DailySummary(ctx context.Context, date time.Time, department string) (DailySummary, error)
	MonthlySeries(ctx context.Context, year int, month time.Month, department string) (MonthlySeries, error)
}
