package report

import (
	"context"
	"time"
)

// DailyCounts are the raw aggregates for one day, before rate derivation.
type DailyCounts struct {
	Present       int
	OnTime        int
	OvertimeCount int
}

type ReportRepository interface {
	// CountDaily aggregates attendance rows for one date. OnTime counts
	// records whose clock-in time of day is at or before the cutoff.
	CountDaily(ctx context.Context, date time.Time, cutoff string, department string) (DailyCounts, error)

	// CountDailyRange aggregates per day over [from, to], keyed by the
	// "2006-01-02" date string. Days with no rows are absent from the map.
	CountDailyRange(ctx context.Context, from, to time.Time, cutoff string, department string) (map[string]DailyCounts, error)
}
