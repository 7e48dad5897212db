package pkg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/vacations/internal/domain"
)

// RequiredFieldsMessage is reported when any `required` field is missing.
const RequiredFieldsMessage = "All fields are required."

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return parseJSONTagName(f.Tag.Get("json"))
	})
	return v
}

// Validate checks obj against its `validate` struct tags and converts
// validator.ValidationErrors into a single *domain.AppError. The failing
// fields, keyed by JSON name, are kept in the wrapped error.
func Validate(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewAppError(domain.CodeInternal, "cannot validate value", err)
	}

	message := RequiredFieldsMessage
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Tag() != "required" {
			message = "validation error"
		}
		fields = append(fields, describeFieldError(fe))
	}
	return domain.NewAppError(domain.CodeValidation, message,
		fmt.Errorf("invalid fields: %s", strings.Join(fields, ", ")))
}

func describeFieldError(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		name = strings.ToLower(fe.StructField())
	}
	msg := fe.Tag()
	if fe.Param() != "" {
		msg += "=" + fe.Param()
	}
	return name + " " + msg
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
