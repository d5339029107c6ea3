package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "userauth/internal/errors"
)

// EchoValidator wraps validator for Echo.
type EchoValidator struct {
	validator *validator.Validate
}

// NewEchoValidator builds the request validator, reporting fields by their
// JSON names.
func NewEchoValidator() *EchoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &EchoValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *EchoValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Translate converts a validator error into the ordered field error list the
// API returns. Non-validation errors collapse into a single entry.
func Translate(err error) []apierrors.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apierrors.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]apierrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apierrors.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "min" {
			return "Name must be at least 3 characters long"
		}
		return "Name is required"
	case "email":
		return "Please provide a valid email address"
	case "password":
		return "Password must be at least 6 characters long"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// NormalizeEmail lowercases an address and strips dots from the local part of
// gmail-hosted addresses, where they are not significant.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	if domain == "gmail.com" || domain == "googlemail.com" {
		local = strings.ReplaceAll(local, ".", "")
	}
	return local + "@" + domain
}
