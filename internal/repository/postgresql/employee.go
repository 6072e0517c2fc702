package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_no, name, father_name, cnic, phone_number,
	   permanent_address, current_address, employment_type, designation, department,
	   date_of_joining, fingerprint_digest, created_at, updated_at`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNo, &e.Name, &e.FatherName, &e.CNIC, &e.PhoneNumber,
		&e.PermanentAddress, &e.CurrentAddress, &e.EmploymentType, &e.Designation, &e.Department,
		&e.DateOfJoining, &e.FingerprintDigest, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, employee_no, name, father_name, cnic, phone_number,
			permanent_address, current_address, employment_type, designation, department,
			date_of_joining
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeNo, e.Name, e.FatherName, e.CNIC, e.PhoneNumber,
		e.PermanentAddress, e.CurrentAddress, e.EmploymentType, e.Designation, e.Department,
		e.DateOfJoining,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.ErrEmployeeNoExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmployeeNo(ctx context.Context, employeeNo string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_no = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by employee_no: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByFingerprintDigest(ctx context.Context, digest string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE fingerprint_digest = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, digest))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrFingerprintNotRecognized
		}
		return nil, fmt.Errorf("failed to get employee by fingerprint: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}
	query += ` ORDER BY employee_no ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployeeNo, &e.Name, &e.FatherName, &e.CNIC, &e.PhoneNumber,
			&e.PermanentAddress, &e.CurrentAddress, &e.EmploymentType, &e.Designation, &e.Department,
			&e.DateOfJoining, &e.FingerprintDigest, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, father_name = $3, cnic = $4, phone_number = $5,
			permanent_address = $6, current_address = $7, employment_type = $8,
			designation = $9, department = $10, date_of_joining = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.Name, e.FatherName, e.CNIC, e.PhoneNumber,
		e.PermanentAddress, e.CurrentAddress, e.EmploymentType,
		e.Designation, e.Department, e.DateOfJoining,
	).Scan(&e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) SetFingerprintDigest(ctx context.Context, id string, digest string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET fingerprint_digest = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, digest)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.ErrFingerprintExists
		}
		return fmt.Errorf("failed to set fingerprint digest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Count(ctx context.Context, department string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM employees`
	args := []interface{}{}
	if department != "" {
		query += ` WHERE department = $1`
		args = append(args, department)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
