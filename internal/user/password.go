package user

import (
	"unicode"

	"dental-tracker-api/internal/apperror"
)

// ValidatePassword enforces the account password policy: at least 8
// characters with one uppercase letter, one lowercase letter and one digit.
func ValidatePassword(password string) error {
	var length, upper, lower, digit int
	for _, r := range password {
		length++
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digit++
		}
	}

	if length < 8 || upper == 0 || lower == 0 || digit == 0 {
		return apperror.Validation("password must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}
