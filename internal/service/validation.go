// campus-crud/internal/service/validation.go
package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance shared by the services. Violations are reported under
// the json field names (nationalId, className, ...), not the Go ones.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts the first violation into
// a typed ValidationError with a readable, per-field message.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := validationErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "min":
		msg = fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		msg = fmt.Sprintf("must have at most %s characters", fe.Param())
	case "email":
		msg = "must be a valid email address"
	case "number":
		msg = "may only contain digits"
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("failed validation rule '%s'", fe.Tag())
	}

	return &ValidationError{Field: fe.Field(), Message: msg}
}
