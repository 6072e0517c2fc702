package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CreateClockIn inserts a new record for (employeeNo, date). It reports
	// ErrAlreadyClockedIn when a record for that day already exists, including
	// when a concurrent insert wins the race.
	CreateClockIn(ctx context.Context, a *Attendance) error

	// SetClockOut completes the record only if it is still open. It reports
	// ErrAlreadyClockedOut when another writer completed it first.
	SetClockOut(ctx context.Context, id string, timeOut time.Time, workMinutes int, overtime bool, overtimeMinutes int) error

	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeNo string, date time.Time) (*Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, int, error)
	Update(ctx context.Context, a *Attendance) error
	DeleteByEmployeeNo(ctx context.Context, employeeNo string) error
}
