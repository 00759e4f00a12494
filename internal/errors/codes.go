// Package errors provides structured error handling for intake operations.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Application errors
	CodeApplicationInvalidFieldPath Code = "APPLICATION_INVALID_FIELD_PATH"
	CodeApplicationUnknownField     Code = "APPLICATION_UNKNOWN_FIELD"
	CodeApplicationArchived         Code = "APPLICATION_ARCHIVED"

	// Questionnaire errors
	CodeQuestionnaireAlreadySubmitted Code = "QUESTIONNAIRE_ALREADY_SUBMITTED"

	// Document errors
	CodeDocumentsEmpty        Code = "DOCUMENTS_EMPTY"
	CodeDocumentsNotSubmitted Code = "DOCUMENTS_NOT_SUBMITTED"
	CodeDocumentsNotApproved  Code = "DOCUMENTS_NOT_APPROVED"
	CodeDocumentEmptyFilename Code = "DOCUMENT_EMPTY_FILENAME"
	CodeDocumentInvalidSize   Code = "DOCUMENT_INVALID_SIZE"

	// Appointment errors
	CodeAppointmentSlotUnknown   Code = "APPOINTMENT_SLOT_UNKNOWN"
	CodeAppointmentInvalidDate   Code = "APPOINTMENT_INVALID_DATE"
	CodeAppointmentInvalidTime   Code = "APPOINTMENT_INVALID_TIME"
	CodeAppointmentInvalidType   Code = "APPOINTMENT_INVALID_TYPE"
	CodeAppointmentAlreadyBooked Code = "APPOINTMENT_ALREADY_BOOKED"

	// Result errors
	CodeResultInvalidDecision Code = "RESULT_INVALID_DECISION"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)
