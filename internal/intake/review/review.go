// Package review models the simulated document-review process as one
// deferred, cancellable transition per application.
//
// The review lifecycle is NotSubmitted -> UnderReview -> Approved. Entry into
// UnderReview schedules a single one-shot callback; the callback is keyed to
// the application identity and re-checks that the submission is still live
// before applying its effect, so a cancelled or superseded timer can never
// approve a detached application snapshot.
package review

import (
	"strings"
	"sync"
	"time"
)

// Phase is the review state for one application.
type Phase string

const (
	// PhaseNotSubmitted means no document batch is awaiting review.
	PhaseNotSubmitted Phase = "notSubmitted"
	// PhaseUnderReview means a batch was submitted and the deferred approval
	// is pending.
	PhaseUnderReview Phase = "underReview"
	// PhaseApproved means the documents were approved.
	PhaseApproved Phase = "approved"
)

// ApproveFunc receives the approval effect once review completes. It runs on
// the timer goroutine, outside the reviewer's lock.
type ApproveFunc func(appID string, approvedAt time.Time)

type pending struct {
	cancel func() bool
}

// Reviewer owns the deferred approval transition for any number of
// applications, at most one pending timer per application.
type Reviewer struct {
	mu       sync.Mutex
	delay    time.Duration
	approve  ApproveFunc
	now      func() time.Time
	schedule func(d time.Duration, fn func()) func() bool
	phases   map[string]Phase
	timers   map[string]*pending
}

// DefaultDelay is the simulated review duration when none is configured.
const DefaultDelay = 45 * time.Second

// New creates a reviewer that calls onApprove when a review completes.
func New(delay time.Duration, onApprove ApproveFunc) *Reviewer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Reviewer{
		delay:   delay,
		approve: onApprove,
		now:     time.Now,
		schedule: func(d time.Duration, fn func()) func() bool {
			return time.AfterFunc(d, fn).Stop
		},
		phases: make(map[string]Phase),
		timers: make(map[string]*pending),
	}
}

// SetScheduler replaces how deferred approvals are armed. The replacement
// returns a cancel func reporting whether the callback was stopped in time.
// It must be installed before the first Submit.
func (r *Reviewer) SetScheduler(schedule func(d time.Duration, fn func()) func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedule = schedule
}

// Phase returns the review phase for an application.
func (r *Reviewer) Phase(appID string) Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	if phase, ok := r.phases[appID]; ok {
		return phase
	}
	return PhaseNotSubmitted
}

// Submit enters UnderReview and schedules the deferred approval. Entry is
// idempotent: when a review is already pending or the application is already
// approved, nothing is scheduled.
func (r *Reviewer) Submit(appID string) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.phases[appID] {
	case PhaseUnderReview, PhaseApproved:
		return
	}
	r.phases[appID] = PhaseUnderReview

	entry := &pending{}
	entry.cancel = r.schedule(r.delay, func() { r.fire(appID, entry) })
	r.timers[appID] = entry
}

// fire applies the deferred approval if, and only if, this exact timer is
// still the live one for the application.
func (r *Reviewer) fire(appID string, entry *pending) {
	r.mu.Lock()
	if r.timers[appID] != entry || r.phases[appID] != PhaseUnderReview {
		r.mu.Unlock()
		return
	}
	delete(r.timers, appID)
	r.phases[appID] = PhaseApproved
	approvedAt := r.now().UTC()
	approve := r.approve
	r.mu.Unlock()

	if approve != nil {
		approve(appID, approvedAt)
	}
}

// Cancel withdraws a pending review. A cancelled timer never applies its
// effect; the application drops back to NotSubmitted unless it was already
// approved.
func (r *Reviewer) Cancel(appID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.timers[appID]; ok {
		entry.cancel()
		delete(r.timers, appID)
	}
	if r.phases[appID] == PhaseUnderReview {
		r.phases[appID] = PhaseNotSubmitted
	}
}

// ForceApprove applies the approval immediately, bypassing the timer. Any
// pending callback is cancelled first. Returns the approval time.
func (r *Reviewer) ForceApprove(appID string) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.timers[appID]; ok {
		entry.cancel()
		delete(r.timers, appID)
	}
	r.phases[appID] = PhaseApproved
	return r.now().UTC()
}

// PendingCount reports how many deferred approvals are scheduled.
func (r *Reviewer) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}
