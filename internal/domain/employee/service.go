package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, department string) (ListEmployeesResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and every attendance record keyed to
	// its employee number in a single transaction.
	DeleteEmployee(ctx context.Context, id string) error

	// EnrollFingerprint stores the keyed digest of the scanned template so the
	// employee can mark attendance at a kiosk.
	EnrollFingerprint(ctx context.Context, id string, req EnrollFingerprintRequest) (EmployeeResponse, error)

	// FindByFingerprint resolves a scanned template to the enrolled employee.
	FindByFingerprint(ctx context.Context, template string) (*Employee, error)
}
