package role

import (
	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
)

type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r CreateRoleRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("name", r.Name).Required("name cannot be null").MaxLength(100)
	return v.Validate()
}

func (r UpdateRoleRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("name", r.Name).NotBlank("name cannot be blank").MaxLength(100)
	return v.Validate()
}
