// Package permission lists the staff permissions checked on the HTTP API.
package permission

import (
	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/authorization"
)

// Policy grants one action on one resource to a role.
type Policy struct {
	Role     authorization.UserRole
	Resource vo.Resource
	Action   vo.Action
}

func (p Policy) Strings() []string {
	return []string{p.Role.String(), p.Resource.String(), p.Action.String()}
}

// Inheritance is a role that receives every permission of Parent.
type Inheritance struct {
	Role   authorization.UserRole
	Parent authorization.UserRole
}

// DefaultPolicies: viewers read everything, staff run the allocation workflow,
// admins also sync Jira and maintain the employee directory.
func DefaultPolicies() []Policy {
	var out []Policy
	for _, r := range []vo.Resource{vo.ResourceEquipment, vo.ResourceAllocation, vo.ResourceReturn, vo.ResourceEmployee, vo.ResourceJira} {
		out = append(out, Policy{Role: authorization.RoleViewer, Resource: r, Action: vo.ActionRead})
	}
	out = append(out,
		Policy{Role: authorization.RoleStaff, Resource: vo.ResourceEquipment, Action: vo.ActionWrite},
		Policy{Role: authorization.RoleStaff, Resource: vo.ResourceAllocation, Action: vo.ActionWrite},
		Policy{Role: authorization.RoleStaff, Resource: vo.ResourceAllocation, Action: vo.ActionSign},
		Policy{Role: authorization.RoleStaff, Resource: vo.ResourceReturn, Action: vo.ActionWrite},
		Policy{Role: authorization.RoleAdmin, Resource: vo.ResourceEmployee, Action: vo.ActionWrite},
		Policy{Role: authorization.RoleAdmin, Resource: vo.ResourceJira, Action: vo.ActionSync},
	)
	return out
}

func DefaultInheritance() []Inheritance {
	return []Inheritance{
		{Role: authorization.RoleStaff, Parent: authorization.RoleViewer},
		{Role: authorization.RoleAdmin, Parent: authorization.RoleStaff},
	}
}
