package employee

import (
	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
)

// CreateEmployeeRequest carries reference ids as strings; they are parsed by
// the ReferenceValidator so a bad id is reported apart from a missing row.
// Any password sent by the caller is ignored.
type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Email        string  `json:"email"`
	Password     string  `json:"password,omitempty"`
	Status       bool    `json:"status"`
	DepartmentID *string `json:"department_id"`
	RoleID       *string `json:"role_id"`
}

type UpdateEmployeeRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Email        *string `json:"email"`
	Status       *bool   `json:"status"`
	DepartmentID *string `json:"department_id"`
}

func (r CreateEmployeeRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("first_name", r.FirstName).Required("Enter your first name").MaxLength(100)
	v.Field("last_name", r.LastName).Required("Enter your last name").MaxLength(100)
	v.Field("email", r.Email).Required("Email cannot be null").Email("Enter a valid email")
	v.Field("phone", r.Phone).Required("Phone number cannot be null").MaxLength(32)
	v.Field("address", r.Address).Required("Address cannot be null")
	v.Field("department_id", r.DepartmentID).Required("Department cannot be null")
	v.Field("role_id", r.RoleID).Required("Role cannot be null")
	return v.Validate()
}

func (r UpdateEmployeeRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("first_name", r.FirstName).NotBlank("Enter your first name").MaxLength(100)
	v.Field("last_name", r.LastName).NotBlank("Enter your last name").MaxLength(100)
	v.Field("email", r.Email).NotBlank("Email cannot be null").Email("Enter a valid email")
	v.Field("phone", r.Phone).NotBlank("Phone number cannot be null").MaxLength(32)
	v.Field("address", r.Address).NotBlank("Address cannot be null")
	return v.Validate()
}
