// Package intake is the embedding surface of the admissions intake engine.
//
// A presentation-layer host loads configuration, opens a snapshot backend,
// builds an application shell, and mounts a Store:
//
//	cfg, _ := intake.LoadConfig()
//	snapshots, closeStore, _ := intake.OpenSnapshotStore(cfg)
//	defer closeStore()
//	shell, _ := intake.NewApplication(intake.NewApplicationInput{Program: "HBO-ICT", Cycle: "2025/2026"})
//	store := intake.MountWithConfig(ctx, shell, cfg, snapshots)
//	defer store.Close()
//
// Everything else — validation, gating, the review timer, snapshotting — runs
// behind the Store's operations.
package intake

import (
	"context"
	"time"

	"github.com/saxionhub/intake/internal/errors"
	"github.com/saxionhub/intake/internal/intake/app"
	"github.com/saxionhub/intake/internal/intake/domain"
	"github.com/saxionhub/intake/internal/intake/gate"
	"github.com/saxionhub/intake/internal/intake/review"
	"github.com/saxionhub/intake/internal/intake/seed"
	"github.com/saxionhub/intake/internal/intake/service"
	"github.com/saxionhub/intake/internal/intake/storage"
	"github.com/saxionhub/intake/internal/platform/config"
	"github.com/saxionhub/intake/internal/platform/i18n"
)

// Model types.
type (
	Application         = domain.Application
	Steps               = domain.Steps
	Assignment          = domain.Assignment
	Documents           = domain.Documents
	Document            = domain.Document
	Appointment         = domain.Appointment
	Result              = domain.Result
	FileMeta            = domain.FileMeta
	Slot                = domain.Slot
	Status              = domain.Status
	NewApplicationInput = domain.NewApplicationInput
)

// Derived status values, most to least advanced.
const (
	StatusNew                    = domain.StatusNew
	StatusInProgress             = domain.StatusInProgress
	StatusQuestionnaireCompleted = domain.StatusQuestionnaireCompleted
	StatusSubmitted              = domain.StatusSubmitted
	StatusApproved               = domain.StatusApproved
	StatusAppointmentScheduled   = domain.StatusAppointmentScheduled
	StatusResultPublished        = domain.StatusResultPublished
)

// Result decisions.
const (
	DecisionAdmit       = domain.DecisionAdmit
	DecisionConditional = domain.DecisionConditional
	DecisionReject      = domain.DecisionReject
)

// Stage gating.
type (
	Stage     = gate.Stage
	Gate      = gate.Gate
	GateState = gate.State
)

const (
	StageQuestionnaire = gate.StageQuestionnaire
	StageDocuments     = gate.StageDocuments
	StageAppointments  = gate.StageAppointments

	GateActive    = gate.StateActive
	GateCompleted = gate.StateCompleted
	GateDisabled  = gate.StateDisabled
	GatePending   = gate.StatePending
)

// Review lifecycle.
type ReviewPhase = review.Phase

const (
	ReviewNotSubmitted = review.PhaseNotSubmitted
	ReviewUnderReview  = review.PhaseUnderReview
	ReviewApproved     = review.PhaseApproved
)

// Store and wiring.
type (
	Store         = service.Store
	Options       = service.Options
	ScheduleInput = service.ScheduleInput
	SnapshotStore = storage.SnapshotStore
	Config        = config.Config
	User          = seed.User
)

// ErrNotFound reports that no snapshot exists for the requested key.
var ErrNotFound = storage.ErrNotFound

// LoadConfig parses the engine configuration from the environment.
func LoadConfig() (Config, error) {
	return config.Load()
}

// NewApplication creates a fresh application shell with a generated ID.
func NewApplication(input NewApplicationInput) (Application, error) {
	return domain.NewApplication(input, nil, nil)
}

// Mount builds a store for a fresh application shell, restoring any prior
// snapshot recorded for the shell's program.
func Mount(ctx context.Context, shell Application, opts Options) *Store {
	return service.Mount(ctx, shell, opts)
}

// MountWithConfig mounts a store using the configured review delay and the
// provided snapshot backend.
func MountWithConfig(ctx context.Context, shell Application, cfg Config, snapshots SnapshotStore) *Store {
	return app.Mount(ctx, shell, cfg, snapshots)
}

// OpenSnapshotStore opens the snapshot backend named by the configuration.
func OpenSnapshotStore(cfg Config) (SnapshotStore, func() error, error) {
	return app.OpenSnapshotStore(cfg)
}

// Sweep archives every unarchived application older than the configured
// retention window, measured from now.
func Sweep(apps []Application, cfg Config, now time.Time) ([]Application, int) {
	return app.Sweep(apps, cfg, now)
}

// EvaluateGates computes the per-stage gates for an application against the
// currently viewed stage.
func EvaluateGates(application Application, viewed Stage) map[Stage]Gate {
	return gate.Evaluate(application, viewed)
}

// AvailableSlots returns the bookable appointment slots.
func AvailableSlots() []Slot {
	return domain.AvailableSlots()
}

// ProgramSlug normalizes a program name into its snapshot storage key.
func ProgramSlug(program string) string {
	return domain.ProgramSlug(program)
}

// DemoUsers returns the demo fixture accounts and their applications.
func DemoUsers() []User {
	return seed.Users()
}

// IsInvalidArgument reports whether an operation rejected its input as
// malformed, leaving state untouched.
func IsInvalidArgument(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsPreconditionFailed reports whether an operation was attempted before its
// gating stage completed, leaving state untouched.
func IsPreconditionFailed(err error) bool {
	return errors.IsPreconditionFailed(err)
}

// IsStorageUnavailable reports whether a persistence read or write failed.
func IsStorageUnavailable(err error) bool {
	return errors.IsStorageUnavailable(err)
}

// StatusLabel returns the localized display label for a status, falling back
// to the raw value for an unknown status.
func StatusLabel(locale string, status Status) string {
	if label, ok := i18n.Message(locale, "status."+string(status)); ok {
		return label
	}
	return string(status)
}

// StageLabel returns the localized display label for a stage.
func StageLabel(locale string, stage Stage) string {
	if label, ok := i18n.Message(locale, "stage."+string(stage)); ok {
		return label
	}
	return string(stage)
}

// GateLabel returns the localized display label for a gate state.
func GateLabel(locale string, state GateState) string {
	if label, ok := i18n.Message(locale, "gate."+string(state)); ok {
		return label
	}
	return string(state)
}

// DecisionLabel returns the localized display label for a result decision.
func DecisionLabel(locale, decision string) string {
	if label, ok := i18n.Message(locale, "decision."+decision); ok {
		return label
	}
	return decision
}
