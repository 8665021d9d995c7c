// Package validate wraps go-playground/validator and turns its output into
// domain.ValidationError values with one entry per offending field.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/technotes/notes-api/internal/core/domain"
)

var knownRoles = []string{domain.RoleEmployee, domain.RoleManager, domain.RoleAdmin}

// Validator checks struct tags and reports field errors by their JSON names.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom "role" tag registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.HasAnyRole([]string{fl.Field().String()}, knownRoles...)
	})
	return &Validator{v: v}
}

// Struct validates s. It returns nil or a *domain.ValidationError.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewValidationError(domain.FieldError{Field: "body", Message: err.Error()})
	}

	fields := make([]domain.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldError(fe)})
	}
	return domain.NewValidationError(fields...)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "role":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(knownRoles, ", "))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
