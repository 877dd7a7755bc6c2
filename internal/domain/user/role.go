package user

import (
	"fmt"

	"github.com/RichardOelschlager/TodoApp/internal/domain"
)

// Role is the authorization level attached to an AppUser.
type Role string

const (
	RoleAppUser  Role = "ROLE_APP_USER"
	RoleAppAdmin Role = "ROLE_APP_ADMIN"
)

// Roles returns every defined role in declaration order.
func Roles() []Role {
	return []Role{RoleAppUser, RoleAppAdmin}
}

// ParseRole resolves a symbolic role name. Names are case sensitive.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.IsValid() {
		return "", domain.NewArgumentError("role", fmt.Sprintf("No role named %q.", name))
	}
	return r, nil
}

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAppUser, RoleAppAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
