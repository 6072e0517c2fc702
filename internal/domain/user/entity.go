package user

import "time"

type Role string

const (
	RolePending        Role = "pending"         // Registered, awaiting primary admin approval
	RoleUser           Role = "user"            // Can view dashboards and reports
	RoleSecondaryAdmin Role = "secondary_admin" // Can manage employees and mark attendance manually
	RolePrimaryAdmin   Role = "primary_admin"   // Full access, including corrections and account management
)

// roleLevels defines the role ordering: pending < user < secondary_admin < primary_admin.
var roleLevels = map[Role]int{
	RolePending:        0,
	RoleUser:           1,
	RoleSecondaryAdmin: 2,
	RolePrimaryAdmin:   3,
}

// Level returns the rank of the role in the hierarchy, or -1 for unknown roles.
func (r Role) Level() int {
	level, ok := roleLevels[r]
	if !ok {
		return -1
	}
	return level
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= 0 && r.Level() >= min.Level()
}

// ParseRole converts a stored or claimed role string to a Role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	_, ok := roleLevels[role]
	return role, ok
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsPrimaryAdmin checks if the account holds the protected top role.
func (u *User) IsPrimaryAdmin() bool {
	return u.Role == RolePrimaryAdmin
}
