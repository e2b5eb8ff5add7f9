package user_test

import (
	"testing"

	"dental-tracker-api/internal/user"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"Valid", "Passw0rd1", true},
		{"ValidLong", "Abcdefg1hijklmnop", true},
		{"TooShort", "Pass0rd", false},
		{"NoUppercase", "passw0rd1", false},
		{"NoLowercase", "PASSW0RD1", false},
		{"NoDigit", "Passwords", false},
		{"Empty", "", false},
		{"ExactlyEight", "Abcdefg1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := user.ValidatePassword(tc.password)
			if tc.wantOK && err != nil {
				t.Errorf("ValidatePassword(%q) = %v, want nil", tc.password, err)
			}
			if !tc.wantOK && err == nil {
				t.Errorf("ValidatePassword(%q) = nil, want error", tc.password)
			}
		})
	}
}
