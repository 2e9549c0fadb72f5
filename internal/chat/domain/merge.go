package domain

import "strings"

// ExtractedFields holds the candidate values parsed out of one extraction
// call. Empty string means the extractor found nothing for that field.
type ExtractedFields struct {
	Name         string
	Email        string
	EnglishLevel string
	Goal         string
	Urgency      string
}

// Empty reports whether the extraction produced no candidates at all.
func (e ExtractedFields) Empty() bool {
	return e.Name == "" && e.Email == "" && e.EnglishLevel == "" && e.Goal == "" && e.Urgency == ""
}

// Merge applies extracted candidates to a lead under the first-write-wins
// rule: a field is written only while still empty, and never cleared or
// overwritten afterwards. Email candidates must additionally contain "@"
// before they are accepted. The input lead is not mutated.
func Merge(lead Lead, extracted ExtractedFields) Lead {
	if lead.Name == "" && extracted.Name != "" {
		lead.Name = strings.TrimSpace(extracted.Name)
	}
	if lead.Email == "" {
		if email := strings.TrimSpace(extracted.Email); email != "" && strings.Contains(email, "@") {
			lead.Email = email
		}
	}
	if lead.EnglishLevel == "" && extracted.EnglishLevel != "" {
		lead.EnglishLevel = strings.TrimSpace(extracted.EnglishLevel)
	}
	if lead.Goal == "" && extracted.Goal != "" {
		lead.Goal = strings.TrimSpace(extracted.Goal)
	}
	if lead.Urgency == "" && extracted.Urgency != "" {
		lead.Urgency = strings.TrimSpace(extracted.Urgency)
	}
	return lead
}
