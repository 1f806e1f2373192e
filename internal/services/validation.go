package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MsgMissingFields is the message of every required-field failure.
const MsgMissingFields = "Missing required fields"

func newValidator() *validator.Validate {
	v := validator.New()
	// report JSON names so the client can map errors back to form fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct-tag validation and converts failures into a
// ValidationError.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate input: %w", err)
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &ValidationError{Message: MsgMissingFields, Fields: fields}
}

// requireText trims *s in place and fails when the result is empty.
func requireText(field string, s *string) error {
	*s = strings.TrimSpace(*s)
	if *s == "" {
		return &ValidationError{
			Message: MsgMissingFields,
			Fields:  map[string]string{field: fmt.Sprintf("Field '%s' failed on the 'required' tag", field)},
		}
	}
	return nil
}

// optionalText trims s and maps blank values to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
