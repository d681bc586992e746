package auth

import (
	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/core/common/validation"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() internal.ValidationErrors {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required("Email cannot be null").Email("Enter a valid email")
	v.Field("password", d.Password).Required("Password cannot be null")
	return v.Validate()
}
