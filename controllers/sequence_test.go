package controllers

import "testing"

func TestNextSerial(t *testing.T) {
	tests := []struct {
		prefix  string
		current string
		want    string
	}{
		{"KC-2026", "", "KC-2026-0001"},
		{"KC-2026", "KC-2026-0007", "KC-2026-0008"},
		{"KC-2026", "KC-2026-0099", "KC-2026-0100"},
		{"CERT-2026", "CERT-2026-9999", "CERT-2026-10000"},
	}

	for _, tt := range tests {
		if got := nextSerial(tt.prefix, tt.current); got != tt.want {
			t.Errorf("nextSerial(%q, %q) = %q, want %q", tt.prefix, tt.current, got, tt.want)
		}
	}
}
