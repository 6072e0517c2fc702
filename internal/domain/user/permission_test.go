package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Level_Ordering(t *testing.T) {
	assert.Less(t, RolePending.Level(), RoleUser.Level())
	assert.Less(t, RoleUser.Level(), RoleSecondaryAdmin.Level())
	assert.Less(t, RoleSecondaryAdmin.Level(), RolePrimaryAdmin.Level())
}

func TestRole_Level_Unknown(t *testing.T) {
	assert.Equal(t, -1, Role("superuser").Level())
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RolePrimaryAdmin.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleUser))
	assert.False(t, RolePending.AtLeast(RoleUser))
	assert.False(t, Role("unknown").AtLeast(RolePending))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("secondary_admin")
	assert.True(t, ok)
	assert.Equal(t, RoleSecondaryAdmin, role)

	_, ok = ParseRole("root")
	assert.False(t, ok)
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		action Action
		want   bool
	}{
		{"pending cannot view reports", RolePending, ActionViewReports, false},
		{"user can view reports", RoleUser, ActionViewReports, true},
		{"user can view employees", RoleUser, ActionViewEmployees, true},
		{"user cannot manage employees", RoleUser, ActionManageEmployees, false},
		{"user cannot mark manual attendance", RoleUser, ActionManualAttendance, false},
		{"secondary admin can manage employees", RoleSecondaryAdmin, ActionManageEmployees, true},
		{"secondary admin can enroll fingerprints", RoleSecondaryAdmin, ActionEnrollFingerprint, true},
		{"secondary admin can mark manual attendance", RoleSecondaryAdmin, ActionManualAttendance, true},
		{"secondary admin cannot correct attendance", RoleSecondaryAdmin, ActionCorrectAttendance, false},
		{"secondary admin cannot manage accounts", RoleSecondaryAdmin, ActionManageAccounts, false},
		{"primary admin can correct attendance", RolePrimaryAdmin, ActionCorrectAttendance, true},
		{"primary admin can manage accounts", RolePrimaryAdmin, ActionManageAccounts, true},
		{"unknown action denied even for primary admin", RolePrimaryAdmin, Action("db.drop"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.action))
		})
	}
}
