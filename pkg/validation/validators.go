package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Letters (accented included) and spaces only
	nameRegex = regexp.MustCompile(`^[\p{L} ]+$`)

	// Conservative local@domain.tld shape. The whitelist doubles as a guard
	// against SQL metacharacters and script markers in the address.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Spanish mobile numbering: 9 digits starting with 6, 7 or 9
	phoneRegex = regexp.MustCompile(`^[679][0-9]{8}$`)

	// ISO calendar form YYYY-MM-DD
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// RegisterValidators registers the intake field validators on the instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("person_name", PersonName)
	_ = v.RegisterValidation("strict_email", StrictEmail)
	_ = v.RegisterValidation("mobile_phone", MobilePhone)
	_ = v.RegisterValidation("iso_date", ISODate)
}

// PersonName validates that a string contains only letters and spaces.
func PersonName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// StrictEmail validates a local@domain.tld address shape.
func StrictEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// MobilePhone validates a 9-digit mobile number starting with 6, 7 or 9.
func MobilePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// ISODate validates a YYYY-MM-DD date string.
func ISODate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}
