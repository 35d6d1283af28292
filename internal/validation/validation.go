// Package validation holds the form schemas shared by the site and the
// reference api, and maps validator failures to per-field messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	return fe[0].Message
}

// Get returns the message for field, or "" when the field is valid.
func (fe FieldErrors) Get(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (fe FieldErrors) Has(field string) bool { return fe.Get(field) != "" }

var (
	rePhone10   = regexp.MustCompile(`^\d{10}$`)
	reAadhar12  = regexp.MustCompile(`^\d{12}$`)
	reLooseMail = regexp.MustCompile(`^\S+@\S+$`)
)

type CustomValidator struct{ v *validator.Validate }

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages line up with form field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// indian mobile number, digits only
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return rePhone10.MatchString(fl.Field().String())
	})
	// aadhar = 12 digits
	_ = v.RegisterValidation("aadhar12", func(fl validator.FieldLevel) bool {
		return reAadhar12.MatchString(fl.Field().String())
	})
	// login form only checks for "something@something"
	_ = v.RegisterValidation("loosemail", func(fl validator.FieldLevel) bool {
		return reLooseMail.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

// Validate satisfies echo.Validator. It returns FieldErrors or nil.
func (cv *CustomValidator) Validate(i any) error {
	if n, ok := i.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := cv.v.Struct(i); err != nil {
		return ToFieldErrors(err)
	}
	return nil
}

var std = New()

// Validate runs the shared validator.
func Validate(i any) error { return std.Validate(i) }

// Map validator.ValidationErrors → FieldErrors with readable messages.
func ToFieldErrors(err error) FieldErrors {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{{Field: "_", Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(ve))
	for _, e := range ve {
		out = append(out, FieldError{Field: e.Field(), Message: messageFor(e)})
	}
	return out
}

// schema returns the struct name from a namespace like "LoginInput.password".
func schema(ns string) string {
	if i := strings.IndexByte(ns, '.'); i > 0 {
		return ns[:i]
	}
	return ""
}

func messageFor(e validator.FieldError) string {
	field, tag := e.Field(), e.Tag()
	if m, ok := messages[schema(e.Namespace())+"."+field+"."+tag]; ok {
		return m
	}
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return field + " must be at least " + e.Param() + " characters"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "oneof":
		return field + " must be one of " + e.Param()
	default:
		return field + " " + tag + " validation failed"
	}
}

// TypeMessage is shown when a numeric form field does not parse.
func TypeMessage(field string) string {
	if m, ok := messages[field+".number"]; ok {
		return m
	}
	return field + " must be a number"
}
