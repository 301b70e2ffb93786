package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors
// naming the first offending flag.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return powerlineerrors.NewValidationError(ve.Field(), describe(ve), err)
	}

	return powerlineerrors.NewValidationError("options", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%v must be one of [%s]", fe.Value(), fe.Param())
	case "min":
		return fmt.Sprintf("%v must be at least %s", fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %s", fe.Value(), fe.Param())
	case "required":
		return "value is required"
	case "theme_name":
		return fmt.Sprintf("unknown theme %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
