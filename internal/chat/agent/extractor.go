package agent

import (
	"context"
	"regexp"
	"strings"
	"time"

	"google.golang.org/adk/model"

	"vocalfitness_backend/internal/chat/domain"
	"vocalfitness_backend/platform/logger"
)

// notFoundSentinel is what the extraction prompt tells the model to emit for
// fields absent from the user's message.
const notFoundSentinel = "NOT_FOUND"

// extractSessionSuffix keeps extraction traffic on a separate session key so
// it never contaminates the conversational context.
const extractSessionSuffix = "_extract"

var (
	nameLineRE    = regexp.MustCompile(`NAME:\s*(.+)`)
	emailLineRE   = regexp.MustCompile(`EMAIL:\s*(.+)`)
	levelLineRE   = regexp.MustCompile(`ENGLISH_LEVEL:\s*(.+)`)
	goalLineRE    = regexp.MustCompile(`GOAL:\s*(.+)`)
	urgencyLineRE = regexp.MustCompile(`URGENCY:\s*(.+)`)
)

// Extractor parses structured qualification fields out of the latest user
// message with a secondary model call.
type Extractor struct {
	model model.LLM
	log   *logger.Logger
}

// NewExtractor creates the extraction collaborator over the given model.
func NewExtractor(llm model.LLM, log *logger.Logger) *Extractor {
	return &Extractor{model: llm, log: log}
}

// Extract runs one extraction call for the turn. It never fails: model
// errors and unparseable responses both degrade to "nothing extracted",
// leaving the lead's field state to the merge rule untouched.
func (e *Extractor) Extract(ctx context.Context, sessionKey, userMessage, previousQuestion string) domain.ExtractedFields {
	prompt := ExtractionPrompt(userMessage, previousQuestion)
	extractKey := sessionKey + extractSessionSuffix

	start := time.Now()
	output, err := runTextAgent(ctx, e.model, "DataExtractor", extractionSystemPrompt, extractKey, prompt)
	e.log.ModelCall("extractor", extractKey, float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		return domain.ExtractedFields{}
	}

	return parseExtraction(output)
}

// parseExtraction pulls the five labelled lines out of the model response.
// Missing lines and NOT_FOUND values both map to empty strings.
func parseExtraction(response string) domain.ExtractedFields {
	return domain.ExtractedFields{
		Name:         matchLabel(nameLineRE, response),
		Email:        matchLabel(emailLineRE, response),
		EnglishLevel: matchLabel(levelLineRE, response),
		Goal:         matchLabel(goalLineRE, response),
		Urgency:      matchLabel(urgencyLineRE, response),
	}
}

func matchLabel(re *regexp.Regexp, response string) string {
	match := re.FindStringSubmatch(response)
	if match == nil {
		return ""
	}
	value := strings.TrimSpace(match[1])
	if value == "" || strings.EqualFold(value, notFoundSentinel) {
		return ""
	}
	return value
}
