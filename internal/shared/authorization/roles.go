package authorization

import "strings"

// UserRole is the staff role carried by bearer tokens and used as the casbin subject.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleStaff  UserRole = "staff"
	RoleViewer UserRole = "viewer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleViewer
}

// ParseUserRole falls back to RoleViewer for unknown roles.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleViewer
}

func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleStaff, RoleViewer}
}
