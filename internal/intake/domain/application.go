// Package domain defines the admissions application model and the pure rules
// that govern its progress.
//
// An Application is one admissions case for one program and cycle. Its
// identity fields (ID, Program, Cycle) never change after creation; only the
// per-stage sub-state under Steps and the Archived flag mutate over the
// application's working lifetime.
package domain

import (
	"strings"
	"time"

	"github.com/saxionhub/intake/internal/platform/id"
)

// DateFormat is the date layout used for progress timestamps.
const DateFormat = "2006-01-02"

// TimeFormat is the clock layout used for appointment slots.
const TimeFormat = "15:04"

// Application is one admissions case for one program and cycle.
type Application struct {
	ID              string    `json:"id"`
	Program         string    `json:"program"`
	Cycle           string    `json:"cycle"`
	CreatedAt       time.Time `json:"createdAt"`
	IsInternational bool      `json:"isInternational"`
	Archived        bool      `json:"archived"`
	Steps           Steps     `json:"steps"`
}

// Steps holds the independently-evolving sub-state per stage.
type Steps struct {
	Assignment  Assignment  `json:"assignment"`
	Documents   Documents   `json:"documents"`
	Appointment Appointment `json:"appointment"`
	Result      Result      `json:"result"`
	// Extra holds stages written through SetField that the model does not
	// know about. Unknown stages are silently initialized, never rejected.
	Extra map[string]map[string]any `json:"extra,omitempty"`
}

// FileMeta describes an attached file. Metadata only; no byte content is
// modeled or stored.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Assignment is the questionnaire stage sub-state. Presence of SubmittedAt is
// the sole signal that the stage is complete.
type Assignment struct {
	Text        string    `json:"text"`
	File        *FileMeta `json:"file,omitempty"`
	SubmittedAt string    `json:"submittedAt,omitempty"`
}

// Submitted reports whether the questionnaire stage is complete.
func (a Assignment) Submitted() bool {
	return strings.TrimSpace(a.SubmittedAt) != ""
}

// Document describes one uploaded document. Order within Documents.Files is
// insertion order, most recent last.
type Document struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	Mime       string `json:"mime"`
	UploadedAt string `json:"uploadedAt"`
}

// Documents is the documents stage sub-state. Approved is set only by the
// review timer, never directly by the student.
type Documents struct {
	Files       []Document `json:"files"`
	Submitted   bool       `json:"submitted"`
	SubmittedAt string     `json:"submittedAt,omitempty"`
	Approved    bool       `json:"approved"`
	ApprovedAt  string     `json:"approvedAt,omitempty"`
}

// Appointment is the appointments stage sub-state.
type Appointment struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Done      bool   `json:"done"`
	TeamsLink string `json:"teamsLink,omitempty"`
}

// Result is the staff-published outcome for an application.
type Result struct {
	Published   bool   `json:"published"`
	Decision    string `json:"decision,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Decision values for a published result.
const (
	DecisionAdmit       = "admit"
	DecisionConditional = "conditional"
	DecisionReject      = "reject"
)

// ValidDecision reports whether value is a known result decision.
func ValidDecision(value string) bool {
	switch value {
	case DecisionAdmit, DecisionConditional, DecisionReject:
		return true
	}
	return false
}

// NewApplicationInput describes the identity needed to create an application.
type NewApplicationInput struct {
	Program         string
	Cycle           string
	IsInternational bool
}

// NewApplication creates a fresh application shell with a generated ID and a
// creation timestamp. Progress fields start empty; status derives to new.
func NewApplication(input NewApplicationInput, now func() time.Time, idGenerator func() (string, error)) (Application, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	program := strings.TrimSpace(input.Program)
	if program == "" {
		return Application{}, ErrEmptyProgram
	}
	cycle := strings.TrimSpace(input.Cycle)
	if cycle == "" {
		return Application{}, ErrEmptyCycle
	}

	appID, err := idGenerator()
	if err != nil {
		return Application{}, err
	}

	return Application{
		ID:              appID,
		Program:         program,
		Cycle:           cycle,
		CreatedAt:       now().UTC(),
		IsInternational: input.IsInternational,
	}, nil
}

// Clone returns a deep copy of the application. Mutating the copy never
// aliases the original's files, attachment, or extra-stage maps.
func (a Application) Clone() Application {
	out := a
	if a.Steps.Assignment.File != nil {
		file := *a.Steps.Assignment.File
		out.Steps.Assignment.File = &file
	}
	if a.Steps.Documents.Files != nil {
		out.Steps.Documents.Files = make([]Document, len(a.Steps.Documents.Files))
		copy(out.Steps.Documents.Files, a.Steps.Documents.Files)
	}
	if a.Steps.Extra != nil {
		out.Steps.Extra = make(map[string]map[string]any, len(a.Steps.Extra))
		for stage, fields := range a.Steps.Extra {
			cloned := make(map[string]any, len(fields))
			for k, v := range fields {
				cloned[k] = v
			}
			out.Steps.Extra[stage] = cloned
		}
	}
	return out
}

// ProgramSlug normalizes a program name into the key used to store its
// snapshot. Lowercase, with non-alphanumeric runs collapsed to single
// hyphens.
func ProgramSlug(program string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(program)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
