package report

// DailySummary aggregates one day's attendance across all employees. Absent
// is the headcount minus employees with any record that day; Late is present
// minus on-time.
type DailySummary struct {
	Date           string  `json:"date"`
	TotalEmployees int     `json:"total_employees"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	OnTime         int     `json:"on_time"`
	Late           int     `json:"late"`
	OvertimeCount  int     `json:"overtime_count"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// DayPoint is one day in a monthly series. Days with no records are
// zero-filled so the series always spans the whole month. Absent derives
// from the employee count at query time, not a historical snapshot, so
// retroactive hires shift past absentee counts.
type DayPoint struct {
	Date          string `json:"date"`
	Present       int    `json:"present"`
	Absent        int    `json:"absent"`
	OnTime        int    `json:"on_time"`
	Late          int    `json:"late"`
	OvertimeCount int    `json:"overtime_count"`
}

type MonthlySeries struct {
	Year           int        `json:"year"`
	Month          int        `json:"month"`
	Department     string     `json:"department,omitempty"`
	TotalEmployees int        `json:"total_employees"`
	Days           []DayPoint `json:"days"`
}
