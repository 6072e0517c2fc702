package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
)

const (
	actionTimeIn        = "time_in"
	actionTimeOut       = "time_out"
	actionAlreadyMarked = "already_marked"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	employeeSvc    employee.EmployeeService
	calculator     Calculator
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	employeeSvc employee.EmployeeService,
	calculator Calculator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		employeeSvc:    employeeSvc,
		calculator:     calculator,
		now:            time.Now,
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MarkByFingerprint implements attendance.AttendanceService. The scan
// sequence for a day is clock-in, clock-out, then informational
// already_marked responses. Races between kiosks resolve on the database
// constraints: a lost clock-in race falls through to the clock-out branch
// and a lost clock-out race reports already_marked.
func (s *AttendanceServiceImpl) MarkByFingerprint(ctx context.Context, req attendance.MarkRequest) (attendance.MarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResponse{}, err
	}

	emp, err := s.employeeSvc.FindByFingerprint(ctx, req.Template)
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	now := s.now()
	today := dateOf(now)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.EmployeeNo, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.MarkResponse{}, err
	}

	if record == nil {
		created := &attendance.Attendance{
			EmployeeNo:     emp.EmployeeNo,
			AttendanceDate: today,
			TimeIn:         &now,
			DeviceID:       &req.DeviceID,
		}
		err := s.attendanceRepo.CreateClockIn(ctx, created)
		if err == nil {
			return markResponse(actionTimeIn, emp, *created), nil
		}
		if !errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.MarkResponse{}, err
		}
		// Lost the insert race; re-read and treat the scan as the next step.
		record, err = s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.EmployeeNo, today)
		if err != nil {
			return attendance.MarkResponse{}, err
		}
	}

	if record.TimeOut != nil {
		return markResponse(actionAlreadyMarked, emp, *record), nil
	}

	workMinutes, err := s.calculator.WorkMinutes(*record.TimeIn, now)
	if err != nil {
		return attendance.MarkResponse{}, err
	}
	overtime, overtimeMinutes := s.calculator.Overtime(workMinutes)

	err = s.attendanceRepo.SetClockOut(ctx, record.ID, now, workMinutes, overtime, overtimeMinutes)
	if errors.Is(err, attendance.ErrAlreadyClockedOut) {
		record, err = s.attendanceRepo.GetByID(ctx, record.ID)
		if err != nil {
			return attendance.MarkResponse{}, err
		}
		return markResponse(actionAlreadyMarked, emp, *record), nil
	}
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	record.TimeOut = &now
	record.TotalWorkMinutes = workMinutes
	record.Overtime = overtime
	record.OvertimeMinutes = overtimeMinutes
	return markResponse(actionTimeOut, emp, *record), nil
}

func markResponse(action string, emp *employee.Employee, record attendance.Attendance) attendance.MarkResponse {
	return attendance.MarkResponse{
		Action:       action,
		EmployeeNo:   emp.EmployeeNo,
		EmployeeName: emp.Name,
		Record:       attendance.ToResponse(record),
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ManualRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeNo(ctx, req.EmployeeNo)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	record := &attendance.Attendance{
		EmployeeNo:     emp.EmployeeNo,
		AttendanceDate: dateOf(now),
		TimeIn:         &now,
	}
	if req.DeviceID != "" {
		record.DeviceID = &req.DeviceID
	}

	if err := s.attendanceRepo.CreateClockIn(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ManualRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeNo(ctx, req.EmployeeNo)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.EmployeeNo, dateOf(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, err
	}

	if record.TimeOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	workMinutes, err := s.calculator.WorkMinutes(*record.TimeIn, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	overtime, overtimeMinutes := s.calculator.Overtime(workMinutes)

	if err := s.attendanceRepo.SetClockOut(ctx, record.ID, now, workMinutes, overtime, overtimeMinutes); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.TimeOut = &now
	record.TotalWorkMinutes = workMinutes
	record.Overtime = overtime
	record.OvertimeMinutes = overtimeMinutes
	return attendance.ToResponse(*record), nil
}

// Correct implements attendance.AttendanceService. Both timestamps are
// replaced and the accounting recomputed, so a corrected record is always
// complete and internally consistent.
func (s *AttendanceServiceImpl) Correct(ctx context.Context, id string, req attendance.CorrectRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeIn, err := CombineDateAndClock(record.AttendanceDate, req.TimeIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	timeOut, err := CombineDateAndClock(record.AttendanceDate, req.TimeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	workMinutes, err := s.calculator.WorkMinutes(timeIn, timeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	overtime, overtimeMinutes := s.calculator.Overtime(workMinutes)

	record.TimeIn = &timeIn
	record.TimeOut = &timeOut
	record.TotalWorkMinutes = workMinutes
	record.Overtime = overtime
	record.OvertimeMinutes = overtimeMinutes

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Total:   total,
		Records: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, attendance.ToResponse(r))
	}

	return resp, nil
}

// EmployeesWithStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeesWithStatus(ctx context.Context, date time.Time) ([]attendance.EmployeeStatus, error) {
	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	day := dateOf(date)
	records, _, err := s.attendanceRepo.List(ctx, attendance.ListFilter{
		DateFrom: &day,
		DateTo:   &day,
	})
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeNo] = r
	}

	statuses := make([]attendance.EmployeeStatus, 0, len(employees))
	for _, e := range employees {
		status := attendance.EmployeeStatus{
			EmployeeNo: e.EmployeeNo,
			Name:       e.Name,
			Department: e.Department,
			State:      attendance.StateNotMarked,
		}
		if r, ok := byEmployee[e.EmployeeNo]; ok {
			status.State = r.State()
			if r.TimeIn != nil {
				v := r.TimeIn.Format(time.RFC3339)
				status.TimeIn = &v
			}
			if r.TimeOut != nil {
				v := r.TimeOut.Format(time.RFC3339)
				status.TimeOut = &v
			}
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}
