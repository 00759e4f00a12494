// Package gate computes per-stage reachability for an application.
//
// Gate state is always derived from the presence of fields in other stages'
// sub-state. It is never stored, so it can never go stale.
package gate

import "github.com/saxionhub/intake/internal/intake/domain"

// Stage identifies one of the three sequential phases of an application.
type Stage string

const (
	// StageQuestionnaire is the motivation questionnaire phase.
	StageQuestionnaire Stage = "questionnaire"
	// StageDocuments is the document upload phase.
	StageDocuments Stage = "documents"
	// StageAppointments is the appointment scheduling phase.
	StageAppointments Stage = "appointments"
)

// Stages returns the stages in workflow order.
func Stages() []Stage {
	return []Stage{StageQuestionnaire, StageDocuments, StageAppointments}
}

// ValidStage reports whether value names a known stage.
func ValidStage(value string) bool {
	switch Stage(value) {
	case StageQuestionnaire, StageDocuments, StageAppointments:
		return true
	}
	return false
}

// State is the computed visual and reachability state of a stage.
type State string

const (
	// StateActive marks the stage the user is currently working in.
	StateActive State = "active"
	// StateCompleted marks a stage whose completion signal is set.
	StateCompleted State = "completed"
	// StateDisabled marks a stage whose gating stage is incomplete.
	StateDisabled State = "disabled"
	// StatePending marks a reachable stage that is neither viewed nor done.
	StatePending State = "pending"
)

// Gate is the evaluated state of one stage. Locked independently gates
// navigation; a disabled-but-not-locked stage differs from a locked one only
// in presentation, never in reachability.
type Gate struct {
	State  State
	Locked bool
}

// Reachable reports whether navigation onto the stage is permitted.
func (g Gate) Reachable() bool {
	return g.State != StateDisabled && !g.Locked
}

// Evaluate computes the gate for every stage. Each stage is evaluated
// independently from the application's sub-state plus the currently viewed
// stage.
//
// Tie-break rule: the viewed stage always evaluates active unless it is
// disabled; completed is only reported for stages the user is not looking at.
func Evaluate(app domain.Application, viewed Stage) map[Stage]Gate {
	steps := app.Steps
	gates := make(map[Stage]Gate, 3)

	gates[StageQuestionnaire] = evaluateStage(
		StageQuestionnaire, viewed,
		false,
		steps.Assignment.Submitted(),
	)
	gates[StageDocuments] = evaluateStage(
		StageDocuments, viewed,
		!steps.Assignment.Submitted(),
		steps.Documents.Submitted && steps.Documents.Approved,
	)
	gates[StageAppointments] = evaluateStage(
		StageAppointments, viewed,
		!steps.Documents.Approved,
		steps.Appointment.Done,
	)
	return gates
}

func evaluateStage(stage, viewed Stage, disabled, completed bool) Gate {
	if disabled {
		return Gate{State: StateDisabled, Locked: true}
	}
	if stage == viewed {
		return Gate{State: StateActive}
	}
	if completed {
		return Gate{State: StateCompleted}
	}
	return Gate{State: StatePending}
}

// Navigate resolves a navigation attempt from the current stage onto target.
// Navigating onto a disabled or locked stage is a no-op, not an error: the
// current stage is returned unchanged.
func Navigate(app domain.Application, current, target Stage) Stage {
	if !ValidStage(string(target)) {
		return current
	}
	if !Evaluate(app, current)[target].Reachable() {
		return current
	}
	return target
}
