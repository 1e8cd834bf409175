package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "abc12!", true},
		{"too short", "a1!", false},
		{"no number", "abcdef!", false},
		{"no special", "abcdef1", false},
		{"numbers and specials only", "123!@#", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-15", true},
		{"1999-12-31", true},
		{"2024-1-15", false},
		{"15-01-2024", false},
		{"2024/01/15", false},
		{"", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		if got := ValidateDateFormat(tt.date); got != tt.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
