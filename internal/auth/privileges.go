package auth

import "strings"

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// PrivilegeChecker decides what a role name allows. Names are compared
// case-insensitively.
type PrivilegeChecker interface {
	CanViewDepartmentRoster(roleName string) bool
}

type DefaultPrivilegeChecker struct{}

func NewPrivilegeChecker() PrivilegeChecker {
	return &DefaultPrivilegeChecker{}
}

func (c *DefaultPrivilegeChecker) CanViewDepartmentRoster(roleName string) bool {
	return c.HasAnyRole(roleName, []string{RoleManager, RoleAdmin})
}

func (c *DefaultPrivilegeChecker) HasAnyRole(roleName string, allowed []string) bool {
	name := strings.TrimSpace(roleName)
	for _, candidate := range allowed {
		if strings.EqualFold(name, candidate) {
			return true
		}
	}
	return false
}
