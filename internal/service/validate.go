package service

import (
	"errors"
	"regexp"
	"strings"
)

// ValidationError carries a user-facing message for a client-correctable
// input failure. The transport layer maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidInput(message string) error {
	return &ValidationError{Message: message}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistrationInput is the raw signup payload before any normalization.
type RegistrationInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// LoginInput is the raw login payload.
type LoginInput struct {
	Email    string
	Password string
}

// validateRegistration checks the signup fields in fixed order; the first
// failing check determines the message.
func validateRegistration(in RegistrationInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" || in.Phone == "" {
		return invalidInput("Please fill in all fields")
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return invalidInput("Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(in.Email) {
		return invalidInput("Please enter a valid email address")
	}
	if len(in.Password) < 6 {
		return invalidInput("Password must be at least 6 characters")
	}
	if in.Password != in.ConfirmPassword {
		return invalidInput("Passwords do not match")
	}
	return nil
}

// validateLogin checks the login fields. A too-short password reports the
// generic credentials message so the response does not reveal which
// constraint failed.
func validateLogin(in LoginInput) error {
	if in.Email == "" || in.Password == "" {
		return invalidInput("Please fill in all fields")
	}
	if !emailPattern.MatchString(in.Email) {
		return invalidInput("Please enter a valid email address")
	}
	if len(in.Password) < 6 {
		return invalidInput("Invalid email or password")
	}
	return nil
}

// IsValidationError reports whether err is a client input failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
