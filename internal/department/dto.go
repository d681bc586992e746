package department

import (
	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
)

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest carries only the fields to overwrite; nil means keep.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r CreateDepartmentRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("name", r.Name).Required("name cannot be null").MaxLength(255)
	return v.Validate()
}

func (r UpdateDepartmentRequest) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("name", r.Name).NotBlank("name cannot be blank").MaxLength(255)
	return v.Validate()
}
