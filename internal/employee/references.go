package employee

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/frahmantamala/employee-directory/internal"
	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	roleDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/role"
)

// ErrMalformedReference is returned when a reference id is present but is not
// a positive base-10 integer.
var ErrMalformedReference = errors.New("malformed reference id")

// MissingReferenceError reports a well-formed id with no row behind it.
type MissingReferenceError struct {
	Relation string
	ID       int64
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Relation, e.ID)
}

type DepartmentLookup interface {
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
}

type RoleLookup interface {
	GetByID(ctx context.Context, id int64) (*roleDatamodel.Role, error)
}

// References holds the rows an employee write links to. A nil field means the
// request did not name that relation.
type References struct {
	Department *departmentDatamodel.Department
	Role       *roleDatamodel.Role
}

type ReferenceValidator struct {
	departments DepartmentLookup
	roles       RoleLookup
}

func NewReferenceValidator(departments DepartmentLookup, roles RoleLookup) *ReferenceValidator {
	return &ReferenceValidator{
		departments: departments,
		roles:       roles,
	}
}

// Resolve looks up the department then the role. The first failure wins.
func (v *ReferenceValidator) Resolve(ctx context.Context, departmentID, roleID *string) (References, error) {
	var refs References

	deptID, ok, err := parseReference(departmentID)
	if err != nil {
		return References{}, err
	}
	if ok {
		dept, err := v.departments.GetByID(ctx, deptID)
		if err != nil {
			if internal.IsNotFound(err) {
				return References{}, &MissingReferenceError{Relation: "department", ID: deptID}
			}
			return References{}, fmt.Errorf("resolve department %d: %w", deptID, err)
		}
		refs.Department = dept
	}

	rID, ok, err := parseReference(roleID)
	if err != nil {
		return References{}, err
	}
	if ok {
		role, err := v.roles.GetByID(ctx, rID)
		if err != nil {
			if internal.IsNotFound(err) {
				return References{}, &MissingReferenceError{Relation: "role", ID: rID}
			}
			return References{}, fmt.Errorf("resolve role %d: %w", rID, err)
		}
		refs.Role = role
	}

	return refs, nil
}

func parseReference(raw *string) (int64, bool, error) {
	if raw == nil {
		return 0, false, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, ErrMalformedReference
	}
	return id, true, nil
}
