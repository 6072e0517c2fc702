package response

import (
	"errors"
	"net/http"

	"github.com/fptrack/attendance-backend-go/internal/domain/attendance"
	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/employee"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/fptrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAssertionExpired):
		Unauthorized(w, "Assertion expired")
	case errors.Is(err, auth.ErrAssertionRevoked):
		Unauthorized(w, "Assertion revoked")
	case errors.Is(err, auth.ErrAssertionInvalid):
		Unauthorized(w, "Invalid assertion")
	case errors.Is(err, auth.ErrAccountNotApproved):
		Forbidden(w, "Account not approved")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, "Insufficient role")
	case errors.Is(err, user.ErrPrimaryAdminProtected):
		Forbidden(w, "Primary admin account cannot be modified")
	case errors.Is(err, user.ErrNotSecondaryAdmin):
		Conflict(w, "User role does not allow this transition")
	case errors.Is(err, user.ErrAlreadyApproved):
		Conflict(w, "User already approved")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrFingerprintNotRecognized):
		NotFound(w, "Fingerprint not recognized")
	case errors.Is(err, employee.ErrFingerprintExists):
		Conflict(w, "Fingerprint already enrolled for another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Not clocked in today", nil)
	case errors.Is(err, attendance.ErrInvalidTimeOrder):
		UnprocessableEntity(w, "Time out must be after time in")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
