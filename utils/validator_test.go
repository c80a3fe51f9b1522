package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"principal@school.org", true},
		{"kc.office+reg@outreach.example.org", true},
		{"no-at-sign.org", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("longenough"); !ok {
		t.Error("ValidatePassword rejected a valid password")
	}
	if ok, msg := ValidatePassword("short"); ok || msg == "" {
		t.Error("ValidatePassword accepted a password under 8 characters")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  Green Valley School \x00 "); got != "Green Valley School" {
		t.Errorf("SanitizeInput = %q, want %q", got, "Green Valley School")
	}
}
