// Package i18n provides the message catalog for intake surfaces. English is
// the base locale; Dutch is the only translation. Every key defined for a
// locale must also exist in the base locale, so lookups can always fall back.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale for the catalog.
const BaseLocale = "en"

var catalogs = map[string]map[string]string{
	"en": {
		"status.new":                    "New",
		"status.inProgress":             "In progress",
		"status.questionnaireCompleted": "Questionnaire completed",
		"status.submitted":              "Documents submitted",
		"status.approved":               "Documents approved",
		"status.appointmentScheduled":   "Appointment scheduled",
		"status.resultPublished":        "Result published",

		"stage.questionnaire": "Questionnaire",
		"stage.documents":     "Documents",
		"stage.appointments":  "Appointments",

		"gate.active":    "Active",
		"gate.completed": "Completed",
		"gate.disabled":  "Locked",
		"gate.pending":   "Open",

		"decision.admit":       "Admitted",
		"decision.conditional": "Conditionally admitted",
		"decision.reject":      "Rejected",

		"documents.underReview": "Your documents are under review",
		"appointment.confirmed": "Your appointment is confirmed",
	},
	"nl": {
		"status.new":                    "Nieuw",
		"status.inProgress":             "Bezig",
		"status.questionnaireCompleted": "Vragenlijst afgerond",
		"status.submitted":              "Documenten ingediend",
		"status.approved":               "Documenten goedgekeurd",
		"status.appointmentScheduled":   "Afspraak gepland",
		"status.resultPublished":        "Uitslag gepubliceerd",

		"stage.questionnaire": "Vragenlijst",
		"stage.documents":     "Documenten",
		"stage.appointments":  "Afspraken",

		"gate.active":    "Actief",
		"gate.completed": "Afgerond",
		"gate.disabled":  "Vergrendeld",
		"gate.pending":   "Open",

		"decision.admit":       "Toegelaten",
		"decision.conditional": "Voorwaardelijk toegelaten",
		"decision.reject":      "Afgewezen",

		"documents.underReview": "Je documenten worden beoordeeld",
		"appointment.confirmed": "Je afspraak is bevestigd",
	},
}

func init() {
	if err := register(); err != nil {
		panic(err)
	}
}

// register validates the catalog and registers every message with
// x/text/message so locale-aware printers resolve the keys.
func register() error {
	base, ok := catalogs[BaseLocale]
	if !ok {
		return fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	for _, locale := range Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := catalogs[locale]
		keys := make([]string, 0, len(messages))
		for key := range messages {
			if _, exists := base[key]; !exists {
				return fmt.Errorf("locale %s: key %q is missing from the base locale", locale, key)
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Locales returns the available locale identifiers, sorted.
func Locales() []string {
	out := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether the locale exists in the catalog.
func HasLocale(locale string) bool {
	_, ok := catalogs[strings.TrimSpace(locale)]
	return ok
}

// Message returns one message value with base-locale fallback.
func Message(locale, key string) (string, bool) {
	trimmedLocale := strings.TrimSpace(locale)
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false
	}
	if messages, ok := catalogs[trimmedLocale]; ok {
		if value, exists := messages[trimmedKey]; exists {
			return value, true
		}
	}
	if trimmedLocale != BaseLocale {
		value, exists := catalogs[BaseLocale][trimmedKey]
		return value, exists
	}
	return "", false
}

// Messages returns a copy of the locale's message map, falling back to the
// base locale for an unknown locale.
func Messages(locale string) map[string]string {
	source, ok := catalogs[strings.TrimSpace(locale)]
	if !ok {
		source = catalogs[BaseLocale]
	}
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

// Printer returns a locale-aware printer over the registered catalog. An
// unparseable or unknown locale yields the base-locale printer.
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || !HasLocale(strings.TrimSpace(locale)) {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
