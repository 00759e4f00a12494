package service

import (
	"github.com/saxionhub/intake/internal/errors"
	"github.com/saxionhub/intake/internal/intake/domain"
)

// stringValue coerces a SetField value into a string. The progress fields
// reachable by path are all free-text; structured fields move through
// dedicated operations instead.
func stringValue(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func setAssignmentField(assignment *domain.Assignment, field string, value any) error {
	switch field {
	case "text":
		text, ok := stringValue(value)
		if !ok {
			return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationInvalidFieldPath,
				"assignment.text expects a string, got %T", value)
		}
		assignment.Text = text
		return nil
	default:
		return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationUnknownField,
			"assignment has no field %q", field)
	}
}

func setAppointmentField(appointment *domain.Appointment, field string, value any) error {
	text, ok := stringValue(value)
	if !ok {
		return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationInvalidFieldPath,
			"appointment.%s expects a string, got %T", field, value)
	}
	// Draft values: slot and type validation happens at confirmation time,
	// in ScheduleAppointment.
	switch field {
	case "date":
		appointment.Date = text
	case "time":
		appointment.Time = text
	case "type":
		appointment.Type = text
	case "notes":
		appointment.Notes = text
	default:
		return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationUnknownField,
			"appointment has no field %q", field)
	}
	return nil
}

func setResultField(result *domain.Result, field string, value any) error {
	text, ok := stringValue(value)
	if !ok {
		return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationInvalidFieldPath,
			"result.%s expects a string, got %T", field, value)
	}
	switch field {
	case "decision":
		if !domain.ValidDecision(text) {
			return errors.Newf(errors.KindInvalidArgument, errors.CodeResultInvalidDecision,
				"decision %q is not one of admit, conditional, reject", text)
		}
		result.Decision = text
	case "notes":
		result.Notes = text
	default:
		return errors.Newf(errors.KindInvalidArgument, errors.CodeApplicationUnknownField,
			"result has no field %q", field)
	}
	return nil
}
