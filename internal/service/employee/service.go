package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/fptrack/attendance-backend-go/internal/pkg/fingerprint"
	"github.com/fptrack/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	digester       *fingerprint.Digester
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	digester *fingerprint.Digester,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		digester:       digester,
	}
}

func parseJoiningDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date_of_joining: %w", err)
	}
	return &t, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joined, err := parseJoiningDate(req.DateOfJoining)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := &employee.Employee{
		EmployeeNo:       req.EmployeeNo,
		Name:             req.Name,
		FatherName:       req.FatherName,
		CNIC:             req.CNIC,
		PhoneNumber:      req.PhoneNumber,
		PermanentAddress: req.PermanentAddress,
		CurrentAddress:   req.CurrentAddress,
		EmploymentType:   req.EmploymentType,
		Designation:      req.Designation,
		Department:       req.Department,
		DateOfJoining:    joined,
	}

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(*e), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(*e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, department string) (employee.ListEmployeesResponse, error) {
	employees, err := s.employeeRepo.List(ctx, department)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Total:     len(employees),
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(e))
	}

	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joined, err := parseJoiningDate(req.DateOfJoining)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.Name = req.Name
	e.FatherName = req.FatherName
	e.CNIC = req.CNIC
	e.PhoneNumber = req.PhoneNumber
	e.PermanentAddress = req.PermanentAddress
	e.CurrentAddress = req.CurrentAddress
	e.EmploymentType = req.EmploymentType
	e.Designation = req.Designation
	e.Department = req.Department
	e.DateOfJoining = joined

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(*e), nil
}

// DeleteEmployee implements employee.EmployeeService. The attendance rows
// keyed to the employee number go in the same transaction so a failed delete
// leaves history intact.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployeeNo(txCtx, e.EmployeeNo); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, e.ID)
	})
}

// EnrollFingerprint implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EnrollFingerprint(ctx context.Context, id string, req employee.EnrollFingerprintRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	digest := s.digester.Digest(req.Template)
	if err := s.employeeRepo.SetFingerprintDigest(ctx, e.ID, digest); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.FingerprintDigest = &digest
	return employee.ToResponse(*e), nil
}

// FindByFingerprint implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FindByFingerprint(ctx context.Context, template string) (*employee.Employee, error) {
	digest := s.digester.Digest(template)
	return s.employeeRepo.GetByFingerprintDigest(ctx, digest)
}
