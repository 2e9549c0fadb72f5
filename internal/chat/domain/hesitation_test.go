package domain

import "testing"

func TestIsHesitant(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"italian refusal with preference", "no, preferisco parlare con qualcuno", true},
		{"plain no", "No grazie", true},
		{"english dont want", "I don't want to share that", true},
		{"talk to request", "can I talk to a real person?", true},
		{"italian call request", "potete chiamare domani?", true},
		{"maybe", "Maybe later", true},
		{"non so", "non so ancora", true},
		{"keyword inside longer word is still a match", "il nostro team è innovativo", true},
		{"email answer is not hesitant", "la mia email è mario@test.com", false},
		{"plain answer", "Mi chiamo Mario Rossi", false},
		{"level answer", "Il mio livello è B2", false},
		{"empty message", "", false},
		{"uppercase keyword", "FORSE la settimana prossima", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHesitant(tt.message); got != tt.want {
				t.Errorf("IsHesitant(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}
