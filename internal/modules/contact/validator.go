package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email format")
)

var validate = validator.New()

// ValidateContact trims the four submission fields and checks presence and
// email shape. Returns the trimmed values on success.
func ValidateContact(name, email, subject, message string) (string, string, string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || subject == "" || message == "" {
		return "", "", "", "", ErrFieldsRequired
	}

	if err := validate.Var(email, "email"); err != nil {
		return "", "", "", "", ErrInvalidEmail
	}

	return name, email, subject, message, nil
}
