package domain

import "testing"

func allKnown() CollectedFields {
	return CollectedFields{
		Name:         "Mario Rossi",
		Email:        "mario@test.com",
		EnglishLevel: "B2",
		Goal:         "career growth",
		Urgency:      "this month",
	}
}

func TestIsCompleteWhenAllFieldsKnown(t *testing.T) {
	if !IsComplete(allKnown(), false, 2) {
		t.Fatal("expected complete when all five fields are known")
	}
}

func TestIsCompleteNotWhenOneFieldMissing(t *testing.T) {
	fields := allKnown()
	fields.Urgency = ""
	if IsComplete(fields, false, 4) {
		t.Fatal("expected incomplete with a missing field and short history")
	}
}

func TestIsCompleteHesitantAfterThreeMessages(t *testing.T) {
	if IsComplete(CollectedFields{}, true, 2) {
		t.Fatal("hesitant with 2 messages should not complete")
	}
	if !IsComplete(CollectedFields{}, true, 3) {
		t.Fatal("hesitant with 3 messages should complete")
	}
}

func TestIsCompletePartialContactAfterFiveMessages(t *testing.T) {
	withName := CollectedFields{Name: "Mario Rossi"}
	if IsComplete(withName, false, 4) {
		t.Fatal("name only with 4 messages should not complete")
	}
	if !IsComplete(withName, false, 5) {
		t.Fatal("name only with 5 messages should complete")
	}

	withEmail := CollectedFields{Email: "mario@test.com"}
	if !IsComplete(withEmail, false, 5) {
		t.Fatal("email only with 5 messages should complete")
	}
}

func TestIsCompleteNothingToFollowUpOn(t *testing.T) {
	fields := CollectedFields{Goal: "travel", Urgency: "someday"}
	if IsComplete(fields, false, 10) {
		t.Fatal("no name, email or hesitation should never complete on length alone")
	}
}
