package employee

import "time"

// Employee is a person tracked by the attendance system. EmployeeNo is the
// stable business key used by kiosk devices and attendance records; ID is the
// internal surrogate key.
type Employee struct {
	ID                string
	EmployeeNo        string
	Name              string
	FatherName        *string
	CNIC              *string
	PhoneNumber       *string
	PermanentAddress  *string
	CurrentAddress    *string
	EmploymentType    *string
	Designation       *string
	Department        *string
	DateOfJoining     *time.Time
	FingerprintDigest *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Enrolled reports whether the employee has a fingerprint on file and can
// mark attendance at a kiosk.
func (e *Employee) Enrolled() bool {
	return e.FingerprintDigest != nil && *e.FingerprintDigest != ""
}
