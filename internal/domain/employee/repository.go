package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmployeeNo(ctx context.Context, employeeNo string) (*Employee, error)
	GetByFingerprintDigest(ctx context.Context, digest string) (*Employee, error)
	List(ctx context.Context, department string) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	SetFingerprintDigest(ctx context.Context, id string, digest string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, department string) (int, error)
}
