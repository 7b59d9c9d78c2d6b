package models

// Role of an authenticated user.
type Role string

const (
	RoleDriver      Role = "driver"
	RoleOperation   Role = "operation"
	RoleBranchAdmin Role = "branchAdmin"
	RoleSuperAdmin  Role = "superAdmin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleOperation, RoleBranchAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsOffice reports whether the role is an office role with administrative
// override on docket transitions.
func (r Role) IsOffice() bool {
	return r == RoleOperation || r == RoleBranchAdmin || r == RoleSuperAdmin
}

// Actor is the authenticated caller of a mutating operation. It is always
// passed explicitly; handlers build it from the request token.
type Actor struct {
	UserID   int64 `json:"user_id"`
	Role     Role  `json:"role"`
	DriverID int64 `json:"driver_id,omitempty"` // set only for driver users
}
