package http

import (
	"errors"
	"reflect"
	"strings"

	"shipping/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo.Validator and turns
// its field errors into the errs taxonomy, named after the JSON fields.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	mapped := make([]error, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		mapped = append(mapped, fieldError(fe))
	}
	return errors.Join(mapped...)
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errs.NewValueIsRequiredError(fe.Field())
	case "gte", "gt", "min":
		return errs.NewValueIsOutOfRangeError(fe.Field(), fe.Value(), fe.Param(), "-")
	case "lte", "lt", "max":
		return errs.NewValueIsOutOfRangeError(fe.Field(), fe.Value(), "-", fe.Param())
	default:
		return errs.NewValueIsInvalidError(fe.Field())
	}
}
