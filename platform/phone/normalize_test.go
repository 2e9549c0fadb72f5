package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"italian mobile without prefix", "333 123 4567", "+393331234567"},
		{"already e164", "+393331234567", "+393331234567"},
		{"international with spaces", "+39 333 123 4567", "+393331234567"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"garbage passes through trimmed", " not a phone ", "not a phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
