package agent

import (
	"strings"
	"testing"

	"vocalfitness_backend/internal/chat/domain"
)

func TestSystemPromptItalianPlaceholders(t *testing.T) {
	prompt := SystemPrompt("it", domain.CollectedFields{Name: "Mario Rossi"})

	if !strings.Contains(prompt, "- Nome: Mario Rossi") {
		t.Error("known name missing from prompt")
	}
	if !strings.Contains(prompt, "- Email: NON RACCOLTO") {
		t.Error("unknown email should render NON RACCOLTO")
	}
	if strings.Contains(prompt, "NOT COLLECTED") {
		t.Error("italian prompt should not carry the english placeholder")
	}
}

func TestSystemPromptEnglishPlaceholders(t *testing.T) {
	prompt := SystemPrompt("en", domain.CollectedFields{Email: "mario@test.com"})

	if !strings.Contains(prompt, "- Email: mario@test.com") {
		t.Error("known email missing from prompt")
	}
	if !strings.Contains(prompt, "- Name: NOT COLLECTED") {
		t.Error("unknown name should render NOT COLLECTED")
	}
}

func TestSystemPromptUnknownLanguageFallsBackToItalian(t *testing.T) {
	prompt := SystemPrompt("de", domain.CollectedFields{})
	if !strings.Contains(prompt, "Sei Alice") {
		t.Fatal("unknown locale should fall back to the italian prompt")
	}
}

func TestExtractionPromptEmbedsTurnContext(t *testing.T) {
	prompt := ExtractionPrompt("subito", "Quando vuoi iniziare?")

	if !strings.Contains(prompt, `User message: "subito"`) {
		t.Error("user message missing")
	}
	if !strings.Contains(prompt, `Previous AI question: "Quando vuoi iniziare?"`) {
		t.Error("previous question missing")
	}
	if !strings.Contains(prompt, "NOT_FOUND") {
		t.Error("sentinel instruction missing")
	}
}
