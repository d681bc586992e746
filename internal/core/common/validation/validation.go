package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/frahmantamala/employee-directory/internal"
)

// ValidatorFunc returns a message when the value is rejected, or "" when it passes.
type ValidatorFunc func(interface{}) string

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []*FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]*FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := &FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return fv
}

// Required rejects empty strings, nil pointers, and pointers to blank strings.
func (fv *FieldValidator) Required(message string) *FieldValidator {
	if message == "" {
		message = fmt.Sprintf("%s is required", fv.FieldName)
	}
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return message
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return message
			}
		case *bool:
			if v == nil {
				return message
			}
		case nil:
			return message
		}
		return ""
	})
	return fv
}

// Email rejects values that are present but not a bare address. Absent values
// are left to Required.
func (fv *FieldValidator) Email(message string) *FieldValidator {
	if message == "" {
		message = fmt.Sprintf("%s must be a valid email", fv.FieldName)
	}
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return ""
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return message
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if s, ok := stringValue(value); ok && len(s) > max {
			return fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
		}
		return ""
	})
	return fv
}

// NotBlank rejects a pointer that is present but blank. Used on update requests
// where omission is allowed but clearing a required column is not.
func (fv *FieldValidator) NotBlank(message string) *FieldValidator {
	if message == "" {
		message = fmt.Sprintf("%s cannot be blank", fv.FieldName)
	}
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if p, ok := value.(*string); ok && p != nil && strings.TrimSpace(*p) == "" {
			return message
		}
		return ""
	})
	return fv
}

// Validate runs every rule and returns the first message per field, or nil.
func (v *ValidationBuilder) Validate() internal.ValidationErrors {
	errs := internal.ValidationErrors{}

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if msg := validator(field.Value); msg != "" {
				errs.Add(field.FieldName, msg)
				break
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}
