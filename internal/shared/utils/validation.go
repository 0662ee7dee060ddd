package utils

import (
	"github.com/go-playground/validator/v10"

	"workbase/internal/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs struct-tag validation and converts failures into a
// validation AppError listing the first offending field.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return errors.NewValidationError("invalid request", fieldErrs[0].Error())
		}
		return errors.NewValidationError("invalid request")
	}
	return nil
}
