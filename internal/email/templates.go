package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Language   string
	ReceivedAt string
}

type contactEmailData struct {
	baseEmailData
	Name     string
	Email    string
	Phone    string
	Discount string
	Message  string
}

type bookingEmailData struct {
	baseEmailData
	Name          string
	Email         string
	Phone         string
	Age           string
	SectorLabel   string
	EnglishLevel  string
	DayLabel      string
	PreferredTime string
	Message       string
}

type corporateQuoteEmailData struct {
	baseEmailData
	RequestID         string
	CompanyName       string
	Industry          string
	NumberOfEmployees string
	Location          string
	ContactName       string
	ContactEmail      string
	ContactPhone      string
	LevelsLabel       string
	PreferredMode     string
	Budget            string
	Notes             string
}

type formReminderEmailData struct {
	baseEmailData
	FormKindLabel string
	Name          string
	Email         string
	SubmittedAt   string
	WindowHours   int
}

type leadQualifiedEmailData struct {
	baseEmailData
	SessionID    string
	Name         string
	Email        string
	EnglishLevel string
	Goal         string
	Urgency      string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatReceivedAt(language string, t time.Time) string {
	layout := "02/01/2006 at 15:04"
	if language == "it" {
		layout = "02/01/2006 alle 15:04"
	}
	return t.UTC().Format(layout)
}

type bilingualLabel struct {
	it string
	en string
}

var sectorLabels = map[string]bilingualLabel{
	"technology":     {"Tecnologia", "Technology"},
	"finance":        {"Finanza", "Finance"},
	"healthcare":     {"Sanità", "Healthcare"},
	"pharmaceutical": {"Farmaceutico", "Pharmaceutical"},
	"engineering":    {"Ingegneria", "Engineering"},
	"legal":          {"Legale", "Legal"},
	"marketing":      {"Marketing/Sales", "Marketing/Sales"},
	"entertainment":  {"Entertainment", "Entertainment"},
	"hospitality":    {"Hospitality", "Hospitality"},
	"education":      {"Educazione", "Education"},
	"consulting":     {"Consulting", "Consulting"},
	"other":          {"Altro", "Other"},
}

var dayLabels = map[string]bilingualLabel{
	"monday":    {"Lunedì", "Monday"},
	"tuesday":   {"Martedì", "Tuesday"},
	"wednesday": {"Mercoledì", "Wednesday"},
	"thursday":  {"Giovedì", "Thursday"},
	"friday":    {"Venerdì", "Friday"},
	"saturday":  {"Sabato", "Saturday"},
}

var trainingLevelLabels = map[string]bilingualLabel{
	"entry":  {"Entry-level", "Entry-level"},
	"middle": {"Middle Management", "Middle Management"},
	"senior": {"Senior Leadership", "Senior Leadership"},
	"all":    {"Tutti i livelli", "All levels"},
}

// translateLabel falls back to the raw value for keys outside the known set.
func translateLabel(labels map[string]bilingualLabel, key, language string) string {
	label, ok := labels[key]
	if !ok {
		return key
	}
	return localized(language, label.it, label.en)
}

func translateLevels(levels []string, language string) string {
	translated := make([]string, 0, len(levels))
	for _, level := range levels {
		translated = append(translated, translateLabel(trainingLevelLabels, level, language))
	}
	return strings.Join(translated, ", ")
}

var formKindLabels = map[string]bilingualLabel{
	"contact":         {"contatto", "contact"},
	"booking":         {"valutazione gratuita", "free assessment"},
	"corporate_quote": {"preventivo corporate", "corporate quote"},
}
