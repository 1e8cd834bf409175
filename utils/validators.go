package utils

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// dateFormatRe matches the ISO yyyy-mm-dd form the ledger keys days by.
// Dates are opaque beyond this shape; they are never calendar-validated.
var dateFormatRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("password", ValidatePasswordRule)
	Validate.RegisterValidation("dateformat", ValidateDateFormatRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
		v.RegisterValidation("dateformat", ValidateDateFormatRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

func ValidateDateFormatRule(fl validator.FieldLevel) bool {
	return ValidateDateFormat(fl.Field().String())
}

func ValidateDateFormat(date string) bool {
	return dateFormatRe.MatchString(date)
}

// ValidatePassword requires at least 6 characters with at least one number
// and one special character.
func ValidatePassword(password string) bool {
	hasNumber := false
	hasSpecial := false

	if len(password) < 6 {
		return false
	}

	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasNumber && hasSpecial
}
