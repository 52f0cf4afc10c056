package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() RegistrationInput {
	return RegistrationInput{
		Name:            "Jo",
		Email:           "jo@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "1234567890",
	}
}

func TestValidateRegistrationOK(t *testing.T) {
	require.NoError(t, validateRegistration(validRegistration()))
}

func TestValidateRegistrationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegistrationInput)
		message string
	}{
		{"missing name", func(in *RegistrationInput) { in.Name = "" }, "Please fill in all fields"},
		{"missing email", func(in *RegistrationInput) { in.Email = "" }, "Please fill in all fields"},
		{"missing phone", func(in *RegistrationInput) { in.Phone = "" }, "Please fill in all fields"},
		{"short name", func(in *RegistrationInput) { in.Name = " a " }, "Name must be at least 2 characters"},
		{"bad email", func(in *RegistrationInput) { in.Email = "not-an-email" }, "Please enter a valid email address"},
		{"email without tld", func(in *RegistrationInput) { in.Email = "jo@x" }, "Please enter a valid email address"},
		{"email with space", func(in *RegistrationInput) { in.Email = "jo o@x.com" }, "Please enter a valid email address"},
		{"short password", func(in *RegistrationInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		}, "Password must be at least 6 characters"},
		{"mismatched passwords", func(in *RegistrationInput) { in.ConfirmPassword = "secret2" }, "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(&in)

			err := validateRegistration(in)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

// A payload failing several checks reports only the first one.
func TestValidateRegistrationFirstFailureWins(t *testing.T) {
	in := validRegistration()
	in.Name = "x"
	in.Email = "broken"
	in.Password = "abc"

	err := validateRegistration(in)
	require.Error(t, err)
	assert.Equal(t, "Name must be at least 2 characters", err.Error())
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		in      LoginInput
		message string
	}{
		{"ok", LoginInput{Email: "jo@x.com", Password: "secret1"}, ""},
		{"missing email", LoginInput{Password: "secret1"}, "Please fill in all fields"},
		{"missing password", LoginInput{Email: "jo@x.com"}, "Please fill in all fields"},
		{"bad email", LoginInput{Email: "jo@", Password: "secret1"}, "Please enter a valid email address"},
		// A short password must not reveal which constraint failed.
		{"short password", LoginInput{Email: "jo@x.com", Password: "abc"}, "Invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLogin(tt.in)
			if tt.message == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
