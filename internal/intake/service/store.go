// Package service implements the application state store: the single owner
// of one admissions application's mutable progress.
//
// Every mutation runs under the store lock, recomputes the derived status
// implicitly (status is a projection of Steps, never stored), and snapshots
// the application through the persistence adapter. Snapshot write failures
// are logged and swallowed; the in-memory state stays authoritative for the
// rest of the session.
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	intakeerrors "github.com/saxionhub/intake/internal/errors"
	"github.com/saxionhub/intake/internal/intake/domain"
	"github.com/saxionhub/intake/internal/intake/gate"
	"github.com/saxionhub/intake/internal/intake/review"
	"github.com/saxionhub/intake/internal/intake/snapshot"
	"github.com/saxionhub/intake/internal/intake/storage"
	"github.com/saxionhub/intake/internal/platform/id"
)

// Options configure the optional dependencies of a store.
type Options struct {
	// Snapshots persists progress after every mutation. Nil disables
	// persistence; the store still works in memory.
	Snapshots storage.SnapshotStore
	// ReviewDelay overrides the simulated document-review duration.
	ReviewDelay time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
	// NewID overrides identifier generation, for tests.
	NewID func() (string, error)
	// Logf overrides the warning logger, for tests.
	Logf func(format string, args ...any)

	// scheduleReview replaces the review timer, for tests.
	scheduleReview func(d time.Duration, fn func()) func() bool
}

// Store owns one application and serializes every mutation.
type Store struct {
	mu        sync.Mutex
	app       domain.Application
	viewed    gate.Stage
	snapshots storage.SnapshotStore
	reviewer  *review.Reviewer
	now       func() time.Time
	newID     func() (string, error)
	logf      func(format string, args ...any)
}

// Mount builds a store for a freshly constructed application shell, restoring
// any prior snapshot recorded for the shell's program. A missing, unreadable,
// or program-mismatched snapshot yields the clean shell.
func Mount(ctx context.Context, shell domain.Application, opts Options) *Store {
	s := &Store{
		app:       shell.Clone(),
		viewed:    gate.StageQuestionnaire,
		snapshots: opts.Snapshots,
		now:       opts.Now,
		newID:     opts.NewID,
		logf:      opts.Logf,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = id.NewID
	}
	if s.logf == nil {
		s.logf = log.Printf
	}
	s.reviewer = review.New(opts.ReviewDelay, s.applyApproval)
	if opts.scheduleReview != nil {
		s.reviewer.SetScheduler(opts.scheduleReview)
	}

	s.restore(ctx)
	s.syncReviewer()
	return s
}

// restore merges a prior snapshot into the shell, if one exists.
func (s *Store) restore(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	data, err := s.snapshots.Load(ctx, snapshot.Key(s.app.Program))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logf("load snapshot for %s: %v", s.app.Program, err)
		}
		return
	}
	snap, err := snapshot.Decode(data)
	if err != nil {
		s.logf("decode snapshot for %s: %v", s.app.Program, err)
		return
	}
	s.app = snapshot.Hydrate(s.app, snap)
}

// syncReviewer re-enters the review state machine after a restore, so that a
// reload while documents sit under review resumes the pending approval.
func (s *Store) syncReviewer() {
	docs := s.app.Steps.Documents
	switch {
	case docs.Approved:
		s.reviewer.ForceApprove(s.app.ID)
	case docs.Submitted && len(docs.Files) > 0:
		s.reviewer.Submit(s.app.ID)
	}
}

// Close tears the store down, cancelling any pending review timer so it can
// never fire against a detached application snapshot.
func (s *Store) Close() {
	s.mu.Lock()
	appID := s.app.ID
	s.mu.Unlock()
	s.reviewer.Cancel(appID)
}

// Application returns a deep copy of the current application state.
func (s *Store) Application() domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Clone()
}

// Status returns the derived overall status.
func (s *Store) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Status()
}

// ReviewPhase reports where the document review stands.
func (s *Store) ReviewPhase() review.Phase {
	s.mu.Lock()
	appID := s.app.ID
	s.mu.Unlock()
	return s.reviewer.Phase(appID)
}

// Gates evaluates the stage gates against the currently viewed stage.
func (s *Store) Gates() map[gate.Stage]gate.Gate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gate.Evaluate(s.app, s.viewed)
}

// Viewed returns the currently viewed stage.
func (s *Store) Viewed() gate.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewed
}

// Navigate moves the view onto target when its gate permits it. Navigating
// onto a disabled or locked stage is a no-op, not an error.
func (s *Store) Navigate(target gate.Stage) gate.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewed = gate.Navigate(s.app, s.viewed, target)
	return s.viewed
}

// SetField replaces one field of a stage's sub-state, addressed by a dotted
// "stage.field" path. Unknown stages are silently initialized; an unknown
// field on a known stage is rejected before any mutation.
func (s *Store) SetField(ctx context.Context, path string, value any) error {
	stage, field, ok := strings.Cut(path, ".")
	stage = strings.TrimSpace(stage)
	field = strings.TrimSpace(field)
	if !ok || stage == "" || field == "" {
		return intakeerrors.Newf(intakeerrors.KindInvalidArgument, intakeerrors.CodeApplicationInvalidFieldPath,
			"field path %q is not of the form stage.field", path)
	}

	return s.mutate(ctx, func(app *domain.Application) error {
		switch stage {
		case "assignment":
			return setAssignmentField(&app.Steps.Assignment, field, value)
		case "appointment":
			return setAppointmentField(&app.Steps.Appointment, field, value)
		case "result":
			return setResultField(&app.Steps.Result, field, value)
		case "documents":
			// Document progress only moves through AddDocument and
			// SubmitDocuments; free-form writes would bypass the review
			// state machine.
			return intakeerrors.Newf(intakeerrors.KindInvalidArgument, intakeerrors.CodeApplicationUnknownField,
				"documents field %q is not settable", field)
		default:
			if app.Steps.Extra == nil {
				app.Steps.Extra = make(map[string]map[string]any)
			}
			if app.Steps.Extra[stage] == nil {
				app.Steps.Extra[stage] = make(map[string]any)
			}
			app.Steps.Extra[stage][field] = value
			return nil
		}
	})
}

// AddDocument appends an uploaded document descriptor with a generated ID and
// an upload date. The list is append-only: re-uploads of the same file become
// distinct entries.
func (s *Store) AddDocument(ctx context.Context, upload domain.FileMeta) (domain.Document, error) {
	name := strings.TrimSpace(upload.Name)
	if name == "" {
		return domain.Document{}, intakeerrors.New(intakeerrors.KindInvalidArgument, intakeerrors.CodeDocumentEmptyFilename,
			"document filename is required")
	}
	if upload.Size < 0 {
		return domain.Document{}, intakeerrors.Newf(intakeerrors.KindInvalidArgument, intakeerrors.CodeDocumentInvalidSize,
			"document size %d is negative", upload.Size)
	}

	docID, err := s.newID()
	if err != nil {
		return domain.Document{}, err
	}
	mime := strings.TrimSpace(upload.Type)
	if mime == "" {
		mime = "application/octet-stream"
	}

	doc := domain.Document{
		ID:         docID,
		Label:      name,
		Filename:   name,
		Size:       upload.Size,
		Mime:       mime,
		UploadedAt: s.now().UTC().Format(domain.DateFormat),
	}
	err = s.mutate(ctx, func(app *domain.Application) error {
		app.Steps.Documents.Files = append(app.Steps.Documents.Files, doc)
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// SubmitDocuments finalizes the upload batch and enters the simulated review.
// A second call while already submitted is a no-op; submitting an empty batch
// is rejected without mutating state.
func (s *Store) SubmitDocuments(ctx context.Context) error {
	var entered bool
	err := s.mutate(ctx, func(app *domain.Application) error {
		if app.Steps.Documents.Submitted {
			return nil
		}
		if len(app.Steps.Documents.Files) == 0 {
			return intakeerrors.New(intakeerrors.KindPreconditionFailed, intakeerrors.CodeDocumentsEmpty,
				"cannot submit an empty document batch")
		}
		app.Steps.Documents.Submitted = true
		app.Steps.Documents.SubmittedAt = s.now().UTC().Format(domain.DateFormat)
		entered = true
		return nil
	})
	if err != nil {
		return err
	}
	if entered {
		s.reviewer.Submit(s.appID())
	}
	return nil
}

// CompleteQuestionnaire marks the questionnaire stage complete. The
// submission date is set once; repeating the call keeps the original date.
func (s *Store) CompleteQuestionnaire(ctx context.Context) error {
	return s.mutate(ctx, func(app *domain.Application) error {
		if app.Steps.Assignment.Submitted() {
			return nil
		}
		app.Steps.Assignment.SubmittedAt = s.now().UTC().Format(domain.DateFormat)
		return nil
	})
}

// AttachAssignmentFile records the questionnaire upload's metadata and marks
// the stage complete, mirroring the upload-a-PDF path of the intake form.
func (s *Store) AttachAssignmentFile(ctx context.Context, meta domain.FileMeta) error {
	name := strings.TrimSpace(meta.Name)
	if name == "" {
		return intakeerrors.New(intakeerrors.KindInvalidArgument, intakeerrors.CodeDocumentEmptyFilename,
			"assignment filename is required")
	}
	return s.mutate(ctx, func(app *domain.Application) error {
		meta.Name = name
		app.Steps.Assignment.File = &meta
		if !app.Steps.Assignment.Submitted() {
			app.Steps.Assignment.SubmittedAt = s.now().UTC().Format(domain.DateFormat)
		}
		return nil
	})
}

// ScheduleInput describes a requested appointment.
type ScheduleInput struct {
	Date  string
	Time  string
	Type  string
	Notes string
}

// ScheduleAppointment confirms an appointment slot. It requires approved
// documents and an exact pair from the availability table; the Teams link is
// derived from the application identity and the chosen slot.
func (s *Store) ScheduleAppointment(ctx context.Context, input ScheduleInput) error {
	appointmentType := strings.TrimSpace(input.Type)
	if appointmentType == "" {
		appointmentType = domain.AppointmentTypeIntake
	}
	if !domain.ValidAppointmentType(appointmentType) {
		return intakeerrors.Newf(intakeerrors.KindInvalidArgument, intakeerrors.CodeAppointmentInvalidType,
			"appointment type %q is not supported", input.Type)
	}

	return s.mutate(ctx, func(app *domain.Application) error {
		if !app.Steps.Documents.Approved {
			return intakeerrors.New(intakeerrors.KindPreconditionFailed, intakeerrors.CodeDocumentsNotApproved,
				"documents must be approved before scheduling")
		}
		if app.Steps.Appointment.Done {
			return intakeerrors.New(intakeerrors.KindPreconditionFailed, intakeerrors.CodeAppointmentAlreadyBooked,
				"an appointment is already confirmed")
		}
		if err := domain.ValidateSlot(input.Date, input.Time); err != nil {
			return err
		}

		app.Steps.Appointment = domain.Appointment{
			Date:      input.Date,
			Time:      input.Time,
			Type:      appointmentType,
			Notes:     input.Notes,
			Done:      true,
			TeamsLink: domain.TeamsLink(app.Program, app.Cycle, input.Date, input.Time, app.ID),
		}
		return nil
	})
}

// ForceApprove applies the review approval immediately, bypassing and
// cancelling the timer. The batch is finalized first when needed, so the
// approval invariants hold even when forcing from an unsubmitted state.
func (s *Store) ForceApprove(ctx context.Context) error {
	err := s.mutate(ctx, func(app *domain.Application) error {
		if app.Steps.Documents.Approved {
			return nil
		}
		if len(app.Steps.Documents.Files) == 0 {
			return intakeerrors.New(intakeerrors.KindPreconditionFailed, intakeerrors.CodeDocumentsEmpty,
				"cannot approve an empty document batch")
		}
		date := s.now().UTC().Format(domain.DateFormat)
		if !app.Steps.Documents.Submitted {
			app.Steps.Documents.Submitted = true
			app.Steps.Documents.SubmittedAt = date
		}
		app.Steps.Documents.Approved = true
		app.Steps.Documents.ApprovedAt = date
		return nil
	})
	if err != nil {
		return err
	}
	s.reviewer.ForceApprove(s.appID())
	return nil
}

// PublishResult records the staff decision and publishes the outcome. An
// empty decision defaults to conditional.
func (s *Store) PublishResult(ctx context.Context, decision string) error {
	decision = strings.TrimSpace(decision)
	if decision == "" {
		decision = domain.DecisionConditional
	}
	if !domain.ValidDecision(decision) {
		return intakeerrors.Newf(intakeerrors.KindInvalidArgument, intakeerrors.CodeResultInvalidDecision,
			"decision %q is not one of admit, conditional, reject", decision)
	}
	return s.mutate(ctx, func(app *domain.Application) error {
		app.Steps.Result.Published = true
		app.Steps.Result.Decision = decision
		app.Steps.Result.PublishedAt = s.now().UTC().Format(domain.DateFormat)
		return nil
	})
}

// UnpublishResult withdraws a published outcome. The recorded decision is
// kept for a later re-publish.
func (s *Store) UnpublishResult(ctx context.Context) error {
	return s.mutate(ctx, func(app *domain.Application) error {
		app.Steps.Result.Published = false
		app.Steps.Result.PublishedAt = ""
		return nil
	})
}

// mutate runs fn under the store lock and snapshots on success. A failed fn
// leaves the application untouched; fn must mutate only after all its checks
// pass.
func (s *Store) mutate(ctx context.Context, fn func(app *domain.Application) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.app); err != nil {
		return err
	}
	s.persistLocked(ctx)
	return nil
}

// applyApproval is the review timer's effect. The reviewer already guards
// against stale timers; the identity check here keeps a late callback from
// ever touching a replaced application.
func (s *Store) applyApproval(appID string, approvedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.app.ID != appID {
		return
	}
	docs := &s.app.Steps.Documents
	if docs.Approved || !docs.Submitted || len(docs.Files) == 0 {
		return
	}
	docs.Approved = true
	docs.ApprovedAt = approvedAt.Format(domain.DateFormat)
	s.persistLocked(context.Background())
}

// persistLocked snapshots the application. Failures are logged and swallowed:
// the in-memory state stays authoritative, progress just will not survive a
// reload.
func (s *Store) persistLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	data, err := snapshot.Encode(snapshot.Capture(s.app, s.now))
	if err != nil {
		s.logf("encode snapshot for %s: %v", s.app.Program, err)
		return
	}
	if err := s.snapshots.Save(ctx, snapshot.Key(s.app.Program), data); err != nil {
		s.logf("save snapshot for %s: %v", s.app.Program, err)
	}
}

func (s *Store) appID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.ID
}
