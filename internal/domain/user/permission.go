package user

type Action string

const (
	// Dashboards, reports, attendance and employee listings
	ActionViewReports   Action = "reports.view"
	ActionViewEmployees Action = "employee.view"

	// Employee management
	ActionManageEmployees   Action = "employee.manage"
	ActionEnrollFingerprint Action = "employee.enroll_fingerprint"

	// Attendance
	ActionManualAttendance  Action = "attendance.manual"
	ActionCorrectAttendance Action = "attendance.correct"

	// Account management
	ActionManageAccounts Action = "account.manage"
)

// MinimumRoles is the single permission table every authorized call goes
// through. Each action names the lowest role allowed to perform it.
var MinimumRoles = map[Action]Role{
	ActionViewReports:       RoleUser,
	ActionViewEmployees:     RoleUser,
	ActionManageEmployees:   RoleSecondaryAdmin,
	ActionEnrollFingerprint: RoleSecondaryAdmin,
	ActionManualAttendance:  RoleSecondaryAdmin,
	ActionCorrectAttendance: RolePrimaryAdmin,
	ActionManageAccounts:    RolePrimaryAdmin,
}

// Allowed checks if a role may perform an action. Unknown actions are denied.
func Allowed(role Role, action Action) bool {
	min, ok := MinimumRoles[action]
	if !ok {
		return false
	}
	return role.AtLeast(min)
}
