package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// minPasswordLength is the minimum number of characters a password must have.
	minPasswordLength = 8
)

// emailPattern matches a standard mailbox shape (local@domain.tld).
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AddressInput carries the structured address fields of a signup request.
type AddressInput struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// SignupInput carries the raw signup fields before validation.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Gender      string
	DateOfBirth string
	Address     AddressInput
}

// ValidateSignup checks the shape of a signup request. Checks run in order and
// short-circuit on the first failure: required fields, then email syntax, then
// password strength. It is a pure function of its input.
func ValidateSignup(in *SignupInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
		{"phoneNumber", in.PhoneNumber},
		{"gender", in.Gender},
		{"dateOfBirth", in.DateOfBirth},
		{"address.street", in.Address.Street},
		{"address.city", in.Address.City},
		{"address.state", in.Address.State},
		{"address.zipCode", in.Address.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if !emailPattern.MatchString(NormalizeEmail(in.Email)) {
		return ErrInvalidEmail
	}

	return validatePassword(in.Password)
}

// NormalizeEmail lowercases and trims an email so lookups and the unique
// constraint treat differently-cased submissions as the same address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validatePassword checks the password strength policy: minimum length plus at
// least one upper-case letter, one lower-case letter, one digit and one symbol.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return fmt.Errorf("%w: must contain upper and lower case letters, a digit and a symbol", ErrWeakPassword)
	}
	return nil
}
