// Package validation contains input format checks shared by handlers.
package validation

import (
	"errors"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the basic shape of an email address. Uniqueness is
// the database's job, not this package's.
func ValidateEmail(email string) error {
	if len(email) > 255 {
		return errors.New("email must be at most 255 characters")
	}
	if !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidateFullName rejects empty and absurdly long names.
func ValidateFullName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > 255 {
		return errors.New("name must be at most 255 characters")
	}
	return nil
}
