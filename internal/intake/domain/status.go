package domain

// Status is the overall application status, derived from the per-stage
// sub-state. It is a recomputable projection of Steps, never independently
// settable truth.
type Status string

const (
	// StatusNew indicates no progress has been recorded yet.
	StatusNew Status = "new"
	// StatusInProgress indicates at least one field has been touched.
	StatusInProgress Status = "inProgress"
	// StatusQuestionnaireCompleted indicates the questionnaire stage is done.
	StatusQuestionnaireCompleted Status = "questionnaireCompleted"
	// StatusSubmitted indicates the document batch was finalized.
	StatusSubmitted Status = "submitted"
	// StatusApproved indicates the review timer approved the documents.
	StatusApproved Status = "approved"
	// StatusAppointmentScheduled indicates a confirmed appointment slot.
	StatusAppointmentScheduled Status = "appointmentScheduled"
	// StatusResultPublished indicates staff published the outcome.
	StatusResultPublished Status = "resultPublished"
)

// ValidStatus reports whether value is a known status.
func ValidStatus(value string) bool {
	switch Status(value) {
	case StatusNew, StatusInProgress, StatusQuestionnaireCompleted,
		StatusSubmitted, StatusApproved, StatusAppointmentScheduled,
		StatusResultPublished:
		return true
	}
	return false
}

// DeriveStatus computes the overall status from stage sub-state. Precedence
// runs from most to least advanced; the first matching milestone wins.
func DeriveStatus(steps Steps) Status {
	switch {
	case steps.Result.Published:
		return StatusResultPublished
	case steps.Appointment.Done:
		return StatusAppointmentScheduled
	case steps.Documents.Approved:
		return StatusApproved
	case steps.Documents.Submitted:
		return StatusSubmitted
	case steps.Assignment.Submitted():
		return StatusQuestionnaireCompleted
	case hasProgress(steps):
		return StatusInProgress
	default:
		return StatusNew
	}
}

// Status derives the application's overall status from its steps.
func (a Application) Status() Status {
	return DeriveStatus(a.Steps)
}

func hasProgress(steps Steps) bool {
	if steps.Assignment.Text != "" || steps.Assignment.File != nil {
		return true
	}
	if len(steps.Documents.Files) > 0 {
		return true
	}
	if steps.Appointment.Date != "" || steps.Appointment.Time != "" ||
		steps.Appointment.Type != "" || steps.Appointment.Notes != "" {
		return true
	}
	return len(steps.Extra) > 0
}
