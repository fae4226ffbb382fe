// Package form validates and cleans record forms before they are sent to the
// catalog API.
package form

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"libadmin/internal/isbn"
)

var validate *validator.Validate

var lettersPattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\s\-.'’]+$`)

// now is replaced in tests.
var now = time.Now

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	validate.RegisterValidation("isbn13dash", validateISBN)
	validate.RegisterValidation("letters", validateLetters)
	validate.RegisterValidation("safe_text", validateSafeText)
	validate.RegisterValidation("fio", validateFIO)
	validate.RegisterValidation("not_future", validateNotFuture)
}

func validateISBN(fl validator.FieldLevel) bool {
	return isbn.Valid(fl.Field().String())
}

func validateLetters(fl validator.FieldLevel) bool {
	return lettersPattern.MatchString(fl.Field().String())
}

// validateSafeText rejects markup. Any other character is kept as typed.
func validateSafeText(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return StripMarkup(v) == strings.TrimSpace(v)
}

// validateFIO applies the letters rule only to authors typed by hand. An
// author whose sibling ID is set already exists upstream under that name.
func validateFIO(fl validator.FieldLevel) bool {
	if id := fl.Parent().FieldByName("ID"); id.IsValid() && id.Kind() == reflect.Pointer && !id.IsNil() {
		return true
	}
	return validateLetters(fl)
}

// validateNotFuture accepts an ISO date (or a bare year) no later than today.
func validateNotFuture(fl validator.FieldLevel) bool {
	v := strings.TrimSpace(fl.Field().String())
	if v == "" {
		return true
	}
	for _, layout := range []string{"2006-01-02", "2006"} {
		if t, err := time.Parse(layout, v); err == nil {
			today := now()
			return !t.After(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
		}
	}
	return false
}

// FieldError is one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks s against its `validate` tags.
func Validate(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	var errors []FieldError
	for _, err := range verrs {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			if err.Kind() == reflect.Slice {
				message = fmt.Sprintf("%s must have at least %s item(s)", field, param)
			} else {
				message = fmt.Sprintf("%s must be at least %s characters", field, param)
			}
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte", "lte":
			message = fmt.Sprintf("%s is out of range (%s %s)", field, tag, param)
		case "isbn13dash":
			message = fmt.Sprintf("%s must be a valid ISBN-13", field)
		case "letters", "fio":
			message = fmt.Sprintf("%s may contain only letters, spaces, hyphens, dots and apostrophes", field)
		case "safe_text":
			message = fmt.Sprintf("%s must not contain markup", field)
		case "datetime":
			message = fmt.Sprintf("%s must be a date in %s format", field, param)
		case "not_future":
			message = fmt.Sprintf("%s must not be in the future", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errors = append(errors, FieldError{
			Field:   namespaceField(err.Namespace()),
			Message: message,
		})
	}

	return errors
}

// namespaceField drops the struct name from "Form.authors[0].fio".
func namespaceField(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// Errors is returned by services when a form fails validation. Nothing is
// sent upstream in that case.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Check validates s and returns Errors, or nil when s is valid.
func Check(s interface{}) error {
	if errs := Validate(s); len(errs) > 0 {
		return Errors(errs)
	}
	return nil
}
