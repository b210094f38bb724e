package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the DTO's validate tags and reports failures as a
// FormError keyed by field name.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	details := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = fmt.Sprintf("%s is required", field)
		case "email":
			details[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			details[field] = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "oneof":
			details[field] = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		default:
			details[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return NewFormError("validation failed", details)
}
