package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/pkg/validate"
)

// echoValidator adapts validate.Validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validate.Validator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validate.New()}
}

// Validate satisfies the echo.Validator interface. Failures are
// *domain.ValidationError values.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}

// bindError turns a failed c.Bind into a validation error so that a body of
// the wrong shape is answered like any other bad input.
func bindError(err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return domain.NewValidationError(domain.FieldError{
			Field:   ute.Field,
			Message: fmt.Sprintf("%s must be of type %s", ute.Field, ute.Type),
		})
	}
	return domain.NewValidationError(domain.FieldError{Field: "body", Message: "malformed request body"})
}
