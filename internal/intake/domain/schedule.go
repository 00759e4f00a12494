package domain

import (
	"crypto/sha256"
	"encoding/base32"
	"strings"
	"time"

	"github.com/saxionhub/intake/internal/errors"
)

// Appointment types.
const (
	AppointmentTypeIntake    = "intake"
	AppointmentTypeMeetGreet = "meet&greet"
)

// ValidAppointmentType reports whether value is a known appointment type.
func ValidAppointmentType(value string) bool {
	switch value {
	case AppointmentTypeIntake, AppointmentTypeMeetGreet:
		return true
	}
	return false
}

// Slot is one bookable date and time pair from the availability table.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// The availability table is hardcoded collaborator data, not computed. The
// scheduling backend behind it is out of scope.
var availableSlots = []Slot{
	{Date: "2025-09-01", Time: "09:00"},
	{Date: "2025-09-01", Time: "10:00"},
	{Date: "2025-09-01", Time: "14:00"},
	{Date: "2025-09-03", Time: "09:00"},
	{Date: "2025-09-03", Time: "11:00"},
	{Date: "2025-09-03", Time: "14:00"},
	{Date: "2025-09-05", Time: "10:00"},
	{Date: "2025-09-05", Time: "11:00"},
	{Date: "2025-09-05", Time: "15:00"},
	{Date: "2025-09-08", Time: "09:00"},
	{Date: "2025-09-08", Time: "13:00"},
}

// AvailableSlots returns the fixed availability table in stable order.
func AvailableSlots() []Slot {
	out := make([]Slot, len(availableSlots))
	copy(out, availableSlots)
	return out
}

// SlotAvailable reports whether the exact date and time pair exists in the
// availability table.
func SlotAvailable(date, clock string) bool {
	for _, slot := range availableSlots {
		if slot.Date == date && slot.Time == clock {
			return true
		}
	}
	return false
}

// ValidateSlot checks a requested appointment slot against the availability
// table. Malformed dates and times are invalid arguments, as are well-formed
// pairs that are simply not on offer.
func ValidateSlot(date, clock string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return errors.Newf(errors.KindInvalidArgument, errors.CodeAppointmentInvalidDate,
			"appointment date %q is not a valid YYYY-MM-DD date", date)
	}
	if _, err := time.Parse(TimeFormat, clock); err != nil {
		return errors.Newf(errors.KindInvalidArgument, errors.CodeAppointmentInvalidTime,
			"appointment time %q is not a valid HH:MM time", clock)
	}
	if !SlotAvailable(date, clock) {
		return errors.Newf(errors.KindInvalidArgument, errors.CodeAppointmentSlotUnknown,
			"appointment slot %s %s is not available", date, clock)
	}
	return nil
}

// TeamsLink derives the meeting link for an appointment. It is a pure
// function of the application identity and the chosen slot; the link is not a
// real resource and carries no invariant beyond uniqueness in practice.
func TeamsLink(program, cycle, date, clock, appID string) string {
	seed := strings.Join([]string{program, cycle, date, clock, appID}, "|")
	sum := sha256.Sum256([]byte(seed))
	token := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum[:15]))
	return "https://teams.microsoft.com/l/meetup-join/intake-" + token
}
