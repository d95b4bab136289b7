package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name (json name of the draft field) to a human-readable
// message. A nil Errors means the draft passed every rule.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate runs the declarative rules on a form draft. It returns nil when the
// draft is valid, or an Errors value describing every failing field. Any other
// error type signals a broken rule set rather than bad input.
func Validate(draft any) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate draft: %w", err)
	}

	errs := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = message(fe)
		}
	}
	return errs
}

// message turns a failed rule into the text shown next to the field.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "registrationType" {
			return "Select a registration type"
		}
		if fe.Field() == "categoryName" {
			return "Please select category"
		}
		return fmt.Sprintf("%s is required", label(fe.Field()))
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return "Select a registration type"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label(fe.Field()), fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", label(fe.Field()))
	default:
		return fmt.Sprintf("%s is invalid", label(fe.Field()))
	}
}

// label converts a json field name into the label the forms render,
// e.g. "firstName" -> "First Name".
func label(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(r - 'a' + 'A')
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
