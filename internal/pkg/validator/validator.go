package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the form/json field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate checks struct fields and returns a field -> message map,
// or nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = message(err)
	}
	return errors
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s characters", err.Field(), err.Param())
	case "gte", "min":
		return fmt.Sprintf("The %s field must be at least %s", err.Field(), err.Param())
	case "len":
		return fmt.Sprintf("The %s field must be exactly %s characters", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
	default:
		return fmt.Sprintf("The %s field is invalid (%s)", err.Field(), err.Tag())
	}
}
