// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"errors"

	domainerrors "washline/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// ValidationError with the first failing field in the details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(
				"field '" + fieldErrs[0].Field() + "' failed on the '" + fieldErrs[0].Tag() + "' rule",
			)
		}

		return domainerrors.ErrValidationFailed
	}

	return nil
}
