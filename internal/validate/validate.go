// Package validate checks request payloads against their struct tags and
// reports failures as domain.ValidationError keyed by json field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/totegamma/storykeep/internal/domain"
)

// FieldChecker is implemented by inputs with rules that span several fields.
type FieldChecker interface {
	CheckFields() map[string]string
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(val.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Cities, fl.Field().String())
	}))
	must(val.RegisterValidation("resource_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.ResourceTypes, fl.Field().String())
	}))
	must(val.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}))

	return val
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct validates s. The returned error is a domain.ValidationError, or nil.
func Struct(s any) error {
	fields := map[string]string{}

	err := v.Struct(s)
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.ValidationError{Fields: map[string]string{"_": err.Error()}}
		}
		for _, fe := range verrs {
			fields[fe.Field()] = message(fe)
		}
	}

	if fc, ok := s.(FieldChecker); ok {
		for k, msg := range fc.CheckFields() {
			if _, exists := fields[k]; !exists {
				fields[k] = msg
			}
		}
	}

	if len(fields) > 0 {
		return domain.ValidationError{Fields: fields}
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return fmt.Sprintf("ensure this value is at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this value is at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("date has wrong format, use %s", fe.Param())
	case "city":
		return "not a supported city"
	case "resource_type":
		return "must be one of: " + strings.Join(domain.ResourceTypes, ", ")
	case "slug":
		return "enter a valid slug of letters, numbers, underscores or hyphens"
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}

// Echo adapts the package to echo.Validator.
type Echo struct{}

func (Echo) Validate(i any) error {
	return Struct(i)
}
