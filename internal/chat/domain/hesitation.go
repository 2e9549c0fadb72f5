package domain

import "strings"

// hesitationKeywords are the bilingual refusal / prefer-a-human / uncertainty
// signals. Matching is plain substring over the lowercased message, so a
// keyword like "no" also matches inside longer words.
var hesitationKeywords = []string{
	"no", "non voglio", "don't want", "preferisco", "prefer",
	"parlare con", "talk to", "chiamare", "call", "esitante",
	"hesitant", "forse", "maybe", "non so", "don't know",
}

// IsHesitant reports whether the user's latest message signals reluctance to
// continue the guided questionnaire.
func IsHesitant(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range hesitationKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
