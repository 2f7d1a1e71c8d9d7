package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to the echo.Validator
// interface so handlers can call c.Validate(req). Field names in error
// messages come from the json tag, matching what the client sent.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &echoValidator{v: v}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldError renders one violation. The tag set here mirrors the
// request schemas: required/email on registration, min on the
// password, gt on the budget bounds, oneof on role, urgency and
// job status.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		choices := strings.Join(strings.Fields(fe.Param()), ", ")
		switch field {
		case "role":
			return "role must be customer, professional or admin"
		case "urgency":
			return "urgency must be urgent, normal or flexible"
		case "status":
			return "status must be one of: " + choices
		}
		return fmt.Sprintf("%s must be one of: %s", field, choices)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
