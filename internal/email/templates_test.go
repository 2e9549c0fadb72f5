package email

import (
	"strings"
	"testing"
	"time"
)

var receivedAt = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func TestRenderContactEmailItalian(t *testing.T) {
	html, err := renderEmailTemplate("contact.html", contactEmailData{
		baseEmailData: baseEmailData{Language: "it", ReceivedAt: formatReceivedAt("it", receivedAt)},
		Name:          "Mario Rossi",
		Email:         "mario@test.com",
		Phone:         "+393331234567",
		Discount:      "early-bird",
		Message:       "Vorrei informazioni sul corso",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Mario Rossi", "mario@test.com", "Vorrei informazioni sul corso", "Ricevuto il", "15/03/2026 alle 14:30"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in contact email", want)
		}
	}
	if strings.Contains(html, "Received on") {
		t.Error("italian email should not carry the english footer")
	}
}

func TestRenderBookingEmailEnglishWithActionBanner(t *testing.T) {
	html, err := renderEmailTemplate("booking.html", bookingEmailData{
		baseEmailData: baseEmailData{Language: "en", ReceivedAt: formatReceivedAt("en", receivedAt)},
		Name:          "Mario Rossi",
		Email:         "mario@test.com",
		Age:           "34",
		SectorLabel:   translateLabel(sectorLabels, "technology", "en"),
		EnglishLevel:  "B1",
		DayLabel:      translateLabel(dayLabels, "monday", "en"),
		PreferredTime: "morning",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Technology", "Monday", "24 hours", "Received on", "15/03/2026 at 14:30"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in booking email", want)
		}
	}
}

func TestRenderCorporateQuoteEmailCarriesRequestID(t *testing.T) {
	html, err := renderEmailTemplate("corporate_quote.html", corporateQuoteEmailData{
		baseEmailData: baseEmailData{Language: "it", ReceivedAt: formatReceivedAt("it", receivedAt)},
		RequestID:     "req-123",
		CompanyName:   "Acme S.p.A.",
		ContactName:   "Luigi Verdi",
		ContactEmail:  "luigi@acme.it",
		LevelsLabel:   translateLevels([]string{"entry", "all"}, "it"),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"req-123", "Acme S.p.A.", "Entry-level, Tutti i livelli", "48 ore"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in corporate quote email", want)
		}
	}
}

func TestRenderFormReminderEmail(t *testing.T) {
	html, err := renderEmailTemplate("form_reminder.html", formReminderEmailData{
		baseEmailData: baseEmailData{Language: "en", ReceivedAt: formatReceivedAt("en", receivedAt)},
		FormKindLabel: translateLabel(formKindLabels, "booking", "en"),
		Name:          "Mario Rossi",
		Email:         "mario@test.com",
		SubmittedAt:   formatReceivedAt("en", receivedAt.Add(-24*time.Hour)),
		WindowHours:   24,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"free assessment", "Mario Rossi", "mario@test.com"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in reminder email", want)
		}
	}
}

func TestRenderLeadQualifiedEmailCarriesSessionID(t *testing.T) {
	html, err := renderEmailTemplate("lead_qualified.html", leadQualifiedEmailData{
		baseEmailData: baseEmailData{Language: "it", ReceivedAt: formatReceivedAt("it", receivedAt)},
		SessionID:     "session-abc",
		Name:          "Mario Rossi",
		Email:         "mario@test.com",
		EnglishLevel:  "B2",
		Goal:          "business meetings",
		Urgency:       "subito",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"session-abc", "Mario Rossi", "B2", "business meetings"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in lead qualified email", want)
		}
	}
}

func TestTranslateLabelFallsBackToRawKey(t *testing.T) {
	if got := translateLabel(sectorLabels, "aerospace", "it"); got != "aerospace" {
		t.Fatalf("unknown key should pass through, got %q", got)
	}
	if got := translateLabel(sectorLabels, "healthcare", "it"); got != "Sanità" {
		t.Fatalf("known key not translated, got %q", got)
	}
}

func TestFormatReceivedAtLocales(t *testing.T) {
	if got := formatReceivedAt("it", receivedAt); got != "15/03/2026 alle 14:30" {
		t.Errorf("italian format: got %q", got)
	}
	if got := formatReceivedAt("en", receivedAt); got != "15/03/2026 at 14:30" {
		t.Errorf("english format: got %q", got)
	}
	if got := formatReceivedAt("de", receivedAt); got != "15/03/2026 at 14:30" {
		t.Errorf("unknown locale should use the english format: got %q", got)
	}
}
