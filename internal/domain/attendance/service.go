package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// MarkByFingerprint is the kiosk entry point: the first scan of the day
	// clocks in, the second clocks out, any further scan reports
	// already_marked without error.
	MarkByFingerprint(ctx context.Context, req MarkRequest) (MarkResponse, error)

	// ClockIn opens today's record for the employee.
	ClockIn(ctx context.Context, req ManualRequest) (AttendanceResponse, error)

	// ClockOut completes today's record, computing worked minutes and
	// overtime against the standard shift.
	ClockOut(ctx context.Context, req ManualRequest) (AttendanceResponse, error)

	// Correct rewrites both timestamps of an existing record and recomputes
	// its accounting.
	Correct(ctx context.Context, id string, req CorrectRequest) (AttendanceResponse, error)

	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)

	// EmployeesWithStatus returns every employee with their record state for
	// the given date.
	EmployeesWithStatus(ctx context.Context, date time.Time) ([]EmployeeStatus, error)
}
