package attendance

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/fptrack/attendance-backend-go/internal/pkg/fingerprint"
	"github.com/fptrack/attendance-backend-go/internal/repository/postgresql"
	employeeService "github.com/fptrack/attendance-backend-go/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttDB *database.DB

func attTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}
	if testAttDB != nil {
		return
	}

	var err error
	testAttDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateAttTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testAttDB.Exec(ctx, "TRUNCATE TABLE attendance, employees CASCADE")
	require.NoError(t, err)
}

type attTestEnv struct {
	svc            attendance.AttendanceService
	impl           *AttendanceServiceImpl
	employeeSvc    employee.EmployeeService
	attendanceRepo attendance.AttendanceRepository
}

func newAttTestEnv() attTestEnv {
	employeeRepo := postgresql.NewEmployeeRepository(testAttDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testAttDB)
	digester := fingerprint.NewDigester("test-fingerprint-key")
	employeeSvc := employeeService.NewEmployeeService(testAttDB, employeeRepo, attendanceRepo, digester)
	svc := NewAttendanceService(attendanceRepo, employeeRepo, employeeSvc, NewCalculator(480))
	return attTestEnv{
		svc:            svc,
		impl:           svc.(*AttendanceServiceImpl),
		employeeSvc:    employeeSvc,
		attendanceRepo: attendanceRepo,
	}
}

func createAttTestEmployee(t *testing.T, ctx context.Context, env attTestEnv, employeeNo string) {
	t.Helper()
	_, err := env.employeeSvc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeNo: employeeNo,
		Name:       "Test Employee " + employeeNo,
	})
	require.NoError(t, err)
}

func enrollAttTestEmployee(t *testing.T, ctx context.Context, env attTestEnv, employeeNo, template string) string {
	t.Helper()
	createAttTestEmployee(t, ctx, env, employeeNo)
	list, err := env.employeeSvc.ListEmployees(ctx, "")
	require.NoError(t, err)
	for _, e := range list.Employees {
		if e.EmployeeNo == employeeNo {
			_, err := env.employeeSvc.EnrollFingerprint(ctx, e.ID, employee.EnrollFingerprintRequest{Template: template})
			require.NoError(t, err)
			return e.ID
		}
	}
	t.Fatalf("employee %s not found after create", employeeNo)
	return ""
}

func TestAttendanceService_ManualClockInAndOut(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }

	resp, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StateTimeInOnly, resp.State)

	env.impl.now = func() time.Time { return start.Add(9 * time.Hour) }

	resp, err = env.svc.ClockOut(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StateComplete, resp.State)
	assert.Equal(t, 540, resp.TotalWorkMinutes)
	assert.True(t, resp.Overtime)
	assert.Equal(t, 60, resp.OvertimeMinutes)
}

func TestAttendanceService_DoubleClockInRejected(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	_, err = env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ConcurrentClockIn(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }

	// Two simultaneous clock-ins race on the (employee_no, attendance_date)
	// constraint: exactly one wins, the other sees ErrAlreadyClockedIn.
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, attendance.ErrAlreadyClockedIn):
			rejected++
		default:
			t.Fatalf("unexpected clock-in error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	record, err := env.attendanceRepo.GetByEmployeeAndDate(ctx, "EMP-001", time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, attendance.StateTimeInOnly, record.State())
	assert.Nil(t, record.TimeOut)
}

func TestAttendanceService_ClockOutWithoutClockIn(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	_, err := env.svc.ClockOut(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_DoubleClockOutRejected(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }
	_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	env.impl.now = func() time.Time { return start.Add(8 * time.Hour) }
	_, err = env.svc.ClockOut(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	_, err = env.svc.ClockOut(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_ClockInUnknownEmployee(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()

	_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "GHOST-1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_MarkByFingerprint_Sequence(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	enrollAttTestEmployee(t, ctx, env, "EMP-001", "template-one")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }

	req := attendance.MarkRequest{Template: "template-one", DeviceID: "kiosk-1"}

	resp, err := env.svc.MarkByFingerprint(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "time_in", resp.Action)
	assert.Equal(t, "EMP-001", resp.EmployeeNo)

	env.impl.now = func() time.Time { return start.Add(8 * time.Hour) }

	resp, err = env.svc.MarkByFingerprint(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "time_out", resp.Action)
	assert.Equal(t, 480, resp.Record.TotalWorkMinutes)
	assert.False(t, resp.Record.Overtime)

	// The third scan is informational, not an error
	resp, err = env.svc.MarkByFingerprint(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "already_marked", resp.Action)
}

func TestAttendanceService_MarkByFingerprint_Unrecognized(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	enrollAttTestEmployee(t, ctx, env, "EMP-001", "template-one")

	_, err := env.svc.MarkByFingerprint(ctx, attendance.MarkRequest{Template: "template-other", DeviceID: "kiosk-1"})
	assert.ErrorIs(t, err, employee.ErrFingerprintNotRecognized)
}

func TestAttendanceService_Correct(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }
	created, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	resp, err := env.svc.Correct(ctx, created.ID, attendance.CorrectRequest{TimeIn: "09:00", TimeOut: "18:30"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StateComplete, resp.State)
	assert.Equal(t, 570, resp.TotalWorkMinutes)
	assert.True(t, resp.Overtime)
	assert.Equal(t, 90, resp.OvertimeMinutes)
}

func TestAttendanceService_Correct_InvalidOrder(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")

	created, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	_, err = env.svc.Correct(ctx, created.ID, attendance.CorrectRequest{TimeIn: "18:00", TimeOut: "09:00"})
	assert.ErrorIs(t, err, attendance.ErrInvalidTimeOrder)
}

func TestAttendanceService_EmployeesWithStatus(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")
	createAttTestEmployee(t, ctx, env, "EMP-002")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }
	_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)

	statuses, err := env.svc.EmployeesWithStatus(ctx, start)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	byNo := map[string]attendance.EmployeeStatus{}
	for _, s := range statuses {
		byNo[s.EmployeeNo] = s
	}
	assert.Equal(t, attendance.StateTimeInOnly, byNo["EMP-001"].State)
	assert.Equal(t, attendance.StateNotMarked, byNo["EMP-002"].State)
}

func TestAttendanceService_List_Filters(t *testing.T) {
	ctx := context.Background()
	attTestInit(t)
	truncateAttTables(t, ctx)

	env := newAttTestEnv()
	createAttTestEmployee(t, ctx, env, "EMP-001")
	createAttTestEmployee(t, ctx, env, "EMP-002")

	start := time.Date(2026, 8, 3, 8, 30, 0, 0, time.UTC)
	env.impl.now = func() time.Time { return start }
	_, err := env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-001"})
	require.NoError(t, err)
	_, err = env.svc.ClockIn(ctx, attendance.ManualRequest{EmployeeNo: "EMP-002"})
	require.NoError(t, err)

	resp, err := env.svc.List(ctx, attendance.ListFilter{EmployeeNo: "EMP-001"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "EMP-001", resp.Records[0].EmployeeNo)

	resp, err = env.svc.List(ctx, attendance.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
