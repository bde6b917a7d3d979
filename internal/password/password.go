// Package password contains utilities for managing passwords.
package password

import (
	"errors"
	"regexp"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	minimumLength       = 10
	minimumEntropoyBits = 60

	minimumUserLength      = 8
	minimumUserEntropyBits = 40
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	lowercaseRe = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	specialRe   = regexp.MustCompile(`[!@#$%^&*()\-_=+{};:,.<>/?\\|"']`)
	nonDigitRe  = regexp.MustCompile(`\D`)
)

var (
	ErrTooShort    = errors.New("password is too short")
	ErrNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrNoDigit     = errors.New("password must contain at least one digit")
	ErrNoSpecial   = errors.New("password must contain at least one special character")
	ErrTooWeak     = errors.New("password is too weak")
	ErrAllDigits   = errors.New("password is entirely numeric")
)

// ValidatePassword enforces the rules for the bootstrap administrator.
func ValidatePassword(password string) error {
	if len(password) < minimumLength {
		return ErrTooShort
	}

	if !uppercaseRe.MatchString(password) {
		return ErrNoUppercase
	}
	if !lowercaseRe.MatchString(password) {
		return ErrNoLowercase
	}
	if !digitRe.MatchString(password) {
		return ErrNoDigit
	}
	if !specialRe.MatchString(password) {
		return ErrNoSpecial
	}

	if err := passwordvalidator.Validate(password, minimumEntropoyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}

	return nil
}

// ValidateUserPassword enforces the looser rules applied at registration and
// password change.
func ValidateUserPassword(password string) error {
	if utf8.RuneCountInString(password) < minimumUserLength {
		return ErrTooShort
	}
	if !nonDigitRe.MatchString(password) {
		return ErrAllDigits
	}
	if err := passwordvalidator.Validate(password, minimumUserEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}
	return nil
}
