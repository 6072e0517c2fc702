package attendance

import "time"

// Record states as exposed to clients. A record never moves backwards:
// not_marked is the absence of a row, a row starts at time_in_only and
// clock-out completes it exactly once.
const (
	StateNotMarked  = "not_marked"
	StateTimeInOnly = "time_in_only"
	StateComplete   = "complete"
)

// Attendance is one employee's record for one calendar day. The pair
// (EmployeeNo, AttendanceDate) is unique; concurrent marks race on that
// constraint rather than on application locks.
type Attendance struct {
	ID               string
	EmployeeNo       string
	AttendanceDate   time.Time
	TimeIn           *time.Time
	TimeOut          *time.Time
	TotalWorkMinutes int
	Overtime         bool
	OvertimeMinutes  int
	DeviceID         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Attendance) State() string {
	switch {
	case a == nil || a.TimeIn == nil:
		return StateNotMarked
	case a.TimeOut == nil:
		return StateTimeInOnly
	default:
		return StateComplete
	}
}
