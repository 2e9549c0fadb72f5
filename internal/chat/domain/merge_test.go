package domain

import "testing"

func TestMergeFillsOnlyEmptyFields(t *testing.T) {
	lead := Lead{Name: "Mario Rossi", Goal: "business meetings"}
	merged := Merge(lead, ExtractedFields{
		Name:         "Luigi Verdi",
		Email:        "mario@test.com",
		EnglishLevel: "B2",
		Goal:         "travel",
		Urgency:      "this month",
	})

	if merged.Name != "Mario Rossi" {
		t.Errorf("name overwritten: got %q", merged.Name)
	}
	if merged.Goal != "business meetings" {
		t.Errorf("goal overwritten: got %q", merged.Goal)
	}
	if merged.Email != "mario@test.com" {
		t.Errorf("email not filled: got %q", merged.Email)
	}
	if merged.EnglishLevel != "B2" {
		t.Errorf("english level not filled: got %q", merged.EnglishLevel)
	}
	if merged.Urgency != "this month" {
		t.Errorf("urgency not filled: got %q", merged.Urgency)
	}
}

func TestMergeNeverClearsFields(t *testing.T) {
	lead := Lead{Name: "Mario Rossi", Email: "mario@test.com"}
	merged := Merge(lead, ExtractedFields{})

	if merged.Name != "Mario Rossi" || merged.Email != "mario@test.com" {
		t.Fatalf("empty extraction cleared fields: name=%q email=%q", merged.Name, merged.Email)
	}
}

func TestMergeRejectsEmailWithoutAtSign(t *testing.T) {
	merged := Merge(Lead{}, ExtractedFields{Email: "mario.test.com"})
	if merged.Email != "" {
		t.Fatalf("accepted email without @: %q", merged.Email)
	}

	merged = Merge(Lead{}, ExtractedFields{Email: "mario@test.com"})
	if merged.Email != "mario@test.com" {
		t.Fatalf("rejected valid email: %q", merged.Email)
	}
}

func TestMergeTrimsWhitespace(t *testing.T) {
	merged := Merge(Lead{}, ExtractedFields{
		Name:  "  Mario Rossi  ",
		Email: " mario@test.com ",
	})
	if merged.Name != "Mario Rossi" {
		t.Errorf("name not trimmed: %q", merged.Name)
	}
	if merged.Email != "mario@test.com" {
		t.Errorf("email not trimmed: %q", merged.Email)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	lead := Lead{SessionID: "s1"}
	_ = Merge(lead, ExtractedFields{Name: "Mario Rossi"})
	if lead.Name != "" {
		t.Fatalf("input lead mutated: name=%q", lead.Name)
	}
}
