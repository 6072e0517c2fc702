package employee

import (
	"time"

	"github.com/fptrack/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNo       string  `json:"employee_no"`
	Name             string  `json:"name"`
	FatherName       *string `json:"father_name,omitempty"`
	CNIC             *string `json:"cnic,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Department       *string `json:"department,omitempty"`
	DateOfJoining    *string `json:"date_of_joining,omitempty"` // "2006-01-02"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no is required",
		})
	} else if !validator.IsValidEmployeeNo(r.EmployeeNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no must be 1-50 characters of uppercase letters, digits or '-'",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DateOfJoining != nil && !validator.IsValidDate(*r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries a full replacement of the mutable profile.
// EmployeeNo is not updatable; it is the business key attendance hangs off.
type UpdateEmployeeRequest struct {
	Name             string  `json:"name"`
	FatherName       *string `json:"father_name,omitempty"`
	CNIC             *string `json:"cnic,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Department       *string `json:"department,omitempty"`
	DateOfJoining    *string `json:"date_of_joining,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DateOfJoining != nil && !validator.IsValidDate(*r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EnrollFingerprintRequest struct {
	Template string `json:"fingerprint_template"`
}

func (r *EnrollFingerprintRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Template) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerprint_template",
			Message: "fingerprint_template is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeNo       string  `json:"employee_no"`
	Name             string  `json:"name"`
	FatherName       *string `json:"father_name,omitempty"`
	CNIC             *string `json:"cnic,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	Department       *string `json:"department,omitempty"`
	DateOfJoining    *string `json:"date_of_joining,omitempty"`
	Enrolled         bool    `json:"fingerprint_enrolled"`
	CreatedAt        string  `json:"created_at"`
}

type ListEmployeesResponse struct {
	Total     int                `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		EmployeeNo:       e.EmployeeNo,
		Name:             e.Name,
		FatherName:       e.FatherName,
		CNIC:             e.CNIC,
		PhoneNumber:      e.PhoneNumber,
		PermanentAddress: e.PermanentAddress,
		CurrentAddress:   e.CurrentAddress,
		EmploymentType:   e.EmploymentType,
		Designation:      e.Designation,
		Department:       e.Department,
		Enrolled:         e.Enrolled(),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.DateOfJoining != nil {
		joined := e.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &joined
	}
	return resp
}
