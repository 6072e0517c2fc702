package attendance

import (
	"time"

	"github.com/fptrack/attendance-backend-go/internal/pkg/validator"
)

// MarkRequest is the kiosk payload: a raw fingerprint template from the
// sensor plus the identifier of the device that scanned it.
type MarkRequest struct {
	Template string `json:"fingerprint_template"`
	DeviceID string `json:"device_id"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Template) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_template",
			Message: "fingerprint_template is required",
		})
	}

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualRequest marks attendance on behalf of an employee, identified by
// employee number rather than fingerprint.
type ManualRequest struct {
	EmployeeNo string `json:"employee_no"`
	DeviceID   string `json:"device_id,omitempty"`
}

func (r *ManualRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectRequest rewrites both timestamps of an existing record. Times are
// clock times on the record's own date; partial corrections are not
// supported so the record is always left internally consistent.
type CorrectRequest struct {
	TimeIn  string `json:"time_in"`  // "HH:MM"
	TimeOut string `json:"time_out"` // "HH:MM"
}

func (r *CorrectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in is required",
		})
	} else if !validator.IsValidTimeOfDay(r.TimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in must be in HH:MM format",
		})
	}

	if validator.IsEmpty(r.TimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_out",
			Message: "time_out is required",
		})
	} else if !validator.IsValidTimeOfDay(r.TimeOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_out",
			Message: "time_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows attendance queries. Zero values mean "no constraint".
type ListFilter struct {
	EmployeeNo string
	Department string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeNo       string  `json:"employee_no"`
	AttendanceDate   string  `json:"attendance_date"`
	State            string  `json:"state"`
	TimeIn           *string `json:"time_in,omitempty"`
	TimeOut          *string `json:"time_out,omitempty"`
	TotalWorkMinutes int     `json:"total_work_minutes"`
	Overtime         bool    `json:"overtime"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	DeviceID         *string `json:"device_id,omitempty"`
}

type ListAttendanceResponse struct {
	Total   int                  `json:"total"`
	Records []AttendanceResponse `json:"records"`
}

// MarkResponse reports the outcome of a kiosk scan. Action is "time_in",
// "time_out" or "already_marked"; the third scan of a day is informational,
// not an error.
type MarkResponse struct {
	Action       string             `json:"action"`
	EmployeeNo   string             `json:"employee_no"`
	EmployeeName string             `json:"employee_name"`
	Record       AttendanceResponse `json:"record"`
}

// EmployeeStatus pairs an employee with today's record state for the
// who-is-in dashboard view.
type EmployeeStatus struct {
	EmployeeNo string  `json:"employee_no"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	State      string  `json:"state"`
	TimeIn     *string `json:"time_in,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		EmployeeNo:       a.EmployeeNo,
		AttendanceDate:   a.AttendanceDate.Format("2006-01-02"),
		State:            a.State(),
		TotalWorkMinutes: a.TotalWorkMinutes,
		Overtime:         a.Overtime,
		OvertimeMinutes:  a.OvertimeMinutes,
		DeviceID:         a.DeviceID,
	}
	if a.TimeIn != nil {
		v := a.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &v
	}
	if a.TimeOut != nil {
		v := a.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &v
	}
	return resp
}
