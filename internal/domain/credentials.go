package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Credential validation errors
var (
	ErrEmailEmpty       = errors.New("email cannot be empty")
	ErrEmailTooLong     = errors.New("email must be at most 254 characters")
	ErrEmailInvalid     = errors.New("email must look like name@example.com")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 72
)

// emailRegex accepts local@domain.tld with no whitespace and a single @.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail validates an already normalized email address.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailEmpty
	}
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if !emailRegex.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword checks password length in bytes.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// IsEmailError reports whether err is one of the email validation errors.
func IsEmailError(err error) bool {
	return errors.Is(err, ErrEmailEmpty) ||
		errors.Is(err, ErrEmailTooLong) ||
		errors.Is(err, ErrEmailInvalid)
}

// IsPasswordError reports whether err is one of the password validation errors.
func IsPasswordError(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) || errors.Is(err, ErrPasswordTooLong)
}
