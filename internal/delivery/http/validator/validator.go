// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the custom rules the request DTOs rely on.
package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// intlPhonePattern accepts international phone numbers in loose E.164 form:
// an optional plus sign followed by 10 to 15 digits.
var intlPhonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom rules registered.
func New() *CustomValidator {
	v := validator.New()

	// notblank rejects strings that are empty after trimming. Unlike
	// required it also fires on whitespace-only values.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	_ = v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return intlPhonePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
