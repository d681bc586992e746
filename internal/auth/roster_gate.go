package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	roleDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/role"
)

type EmployeeLookup interface {
	GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error)
}

type RoleLookup interface {
	GetByID(ctx context.Context, id int64) (*roleDatamodel.Role, error)
}

type DepartmentLookup interface {
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
}

// RosterGate authorizes the "employees in my department" query. It holds no
// state between calls.
type RosterGate struct {
	employees   EmployeeLookup
	roles       RoleLookup
	departments DepartmentLookup
	privileges  PrivilegeChecker
	logger      *slog.Logger
}

func NewRosterGate(employees EmployeeLookup, roles RoleLookup, departments DepartmentLookup, privileges PrivilegeChecker, logger *slog.Logger) *RosterGate {
	if privileges == nil {
		privileges = NewPrivilegeChecker()
	}
	return &RosterGate{
		employees:   employees,
		roles:       roles,
		departments: departments,
		privileges:  privileges,
		logger:      logger,
	}
}

// AuthorizeRosterView returns the caller's own department when the caller's
// role is manager or admin. Failures are ErrCallerNotFound,
// ErrInsufficientPrivileges, ErrDepartmentNotFound or a wrapped store error.
func (g *RosterGate) AuthorizeRosterView(ctx context.Context, callerEmail string) (*departmentDatamodel.Department, error) {
	caller, err := g.employees.GetByEmail(ctx, callerEmail)
	if err != nil {
		if internal.IsNotFound(err) {
			return nil, ErrCallerNotFound
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}

	roleName, err := g.roleName(ctx, caller)
	if err != nil {
		return nil, err
	}
	if !g.privileges.CanViewDepartmentRoster(roleName) {
		g.logger.Debug("caller role cannot view roster", "employee_id", caller.ID, "role", roleName)
		return nil, ErrInsufficientPrivileges
	}

	if caller.DepartmentID == nil {
		return nil, ErrDepartmentNotFound
	}
	dept, err := g.departments.GetByID(ctx, *caller.DepartmentID)
	if err != nil {
		if internal.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("load caller department: %w", err)
	}
	return dept, nil
}

// roleName returns "" for a caller with no role or a role id that no longer
// resolves; both are unprivileged.
func (g *RosterGate) roleName(ctx context.Context, caller *employeeDatamodel.Employee) (string, error) {
	if caller.RoleID == nil {
		return "", nil
	}
	role, err := g.roles.GetByID(ctx, *caller.RoleID)
	if err != nil {
		if internal.IsNotFound(err) {
			g.logger.Warn("caller role does not resolve", "employee_id", caller.ID, "role_id", *caller.RoleID)
			return "", nil
		}
		return "", fmt.Errorf("load caller role: %w", err)
	}
	return role.Name, nil
}
