package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator validates bound request DTOs for echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator. Field errors are reported under the
// name the client sent (the query, param or json tag) rather than the Go field name.
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterTagNameFunc(requestFieldName)
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
