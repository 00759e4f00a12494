package gate

import (
	"testing"

	"github.com/saxionhub/intake/internal/intake/domain"
)

func freshApp() domain.Application {
	return domain.Application{ID: "app123", Program: "HBO-ICT", Cycle: "2025/2026"}
}

func questionnaireDone(app domain.Application) domain.Application {
	app.Steps.Assignment.SubmittedAt = "2025-06-02"
	return app
}

func documentsSubmitted(app domain.Application) domain.Application {
	app = questionnaireDone(app)
	app.Steps.Documents.Files = []domain.Document{{ID: "d1", Filename: "passport.pdf"}}
	app.Steps.Documents.Submitted = true
	app.Steps.Documents.SubmittedAt = "2025-06-03"
	return app
}

func documentsApproved(app domain.Application) domain.Application {
	app = documentsSubmitted(app)
	app.Steps.Documents.Approved = true
	app.Steps.Documents.ApprovedAt = "2025-06-04"
	return app
}

func TestEvaluateFreshApplication(t *testing.T) {
	gates := Evaluate(freshApp(), StageQuestionnaire)

	if gates[StageQuestionnaire].State != StateActive {
		t.Fatalf("questionnaire = %q, want %q", gates[StageQuestionnaire].State, StateActive)
	}
	if gates[StageDocuments].State != StateDisabled || !gates[StageDocuments].Locked {
		t.Fatalf("documents = %+v, want locked disabled", gates[StageDocuments])
	}
	if gates[StageAppointments].State != StateDisabled || !gates[StageAppointments].Locked {
		t.Fatalf("appointments = %+v, want locked disabled", gates[StageAppointments])
	}
}

func TestEvaluateAfterQuestionnaire(t *testing.T) {
	gates := Evaluate(questionnaireDone(freshApp()), StageDocuments)

	if gates[StageQuestionnaire].State != StateCompleted {
		t.Fatalf("questionnaire = %q, want %q", gates[StageQuestionnaire].State, StateCompleted)
	}
	if gates[StageDocuments].State != StateActive {
		t.Fatalf("documents = %q, want %q", gates[StageDocuments].State, StateActive)
	}
	if gates[StageAppointments].State != StateDisabled {
		t.Fatalf("appointments = %q, want %q", gates[StageAppointments].State, StateDisabled)
	}
}

func TestEvaluateAppointmentsStayLockedUntilApproval(t *testing.T) {
	gates := Evaluate(documentsSubmitted(freshApp()), StageDocuments)

	if gates[StageAppointments].State != StateDisabled || !gates[StageAppointments].Locked {
		t.Fatalf("appointments = %+v, want locked disabled before approval", gates[StageAppointments])
	}

	gates = Evaluate(documentsApproved(freshApp()), StageDocuments)
	if gates[StageAppointments].State != StatePending {
		t.Fatalf("appointments = %q, want %q after approval", gates[StageAppointments].State, StatePending)
	}
	if gates[StageAppointments].Locked {
		t.Fatal("expected appointments to unlock after approval")
	}
	if gates[StageDocuments].State != StateActive {
		t.Fatalf("documents = %q, want %q while viewed", gates[StageDocuments].State, StateActive)
	}
}

func TestEvaluateViewedStageWinsOverCompleted(t *testing.T) {
	app := documentsApproved(freshApp())

	gates := Evaluate(app, StageDocuments)
	if gates[StageDocuments].State != StateActive {
		t.Fatalf("viewed completed stage = %q, want %q", gates[StageDocuments].State, StateActive)
	}

	gates = Evaluate(app, StageAppointments)
	if gates[StageDocuments].State != StateCompleted {
		t.Fatalf("unviewed completed stage = %q, want %q", gates[StageDocuments].State, StateCompleted)
	}
}

func TestNavigateOntoLockedStageIsNoOp(t *testing.T) {
	app := questionnaireDone(freshApp())

	if got := Navigate(app, StageDocuments, StageAppointments); got != StageDocuments {
		t.Fatalf("navigate = %q, want to stay on %q", got, StageDocuments)
	}

	app = documentsApproved(app)
	if got := Navigate(app, StageDocuments, StageAppointments); got != StageAppointments {
		t.Fatalf("navigate = %q, want %q after approval", got, StageAppointments)
	}
}

func TestNavigateUnknownStageIsNoOp(t *testing.T) {
	app := freshApp()

	if got := Navigate(app, StageQuestionnaire, Stage("housing")); got != StageQuestionnaire {
		t.Fatalf("navigate = %q, want to stay on %q", got, StageQuestionnaire)
	}
}

func TestStagesOrder(t *testing.T) {
	stages := Stages()
	want := []Stage{StageQuestionnaire, StageDocuments, StageAppointments}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Fatalf("stages[%d] = %q, want %q", i, stages[i], want[i])
		}
	}
}
