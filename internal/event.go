package internal

import (
	"fmt"
	"time"
)

// NotAvailable replaces text fields that are missing or unreadable.
const NotAvailable = "<NA>"

// Event is a single row of the CalendarItem table.
//
// StartDate and EndDate hold the wall clock stored in the database, which is
// UTC. Use LocalStart and LocalEnd for display.
type Event struct {
	ID          int64
	Calendar    string
	StartDate   time.Time
	EndDate     time.Time
	Summary     string
	Description string
	Location    string
	AllDay      bool
}

const dateTimeFormat = "2006-01-02 15:04:05"

func (e Event) String() string {
	return fmt.Sprintf("[rowid: %d] %s - %s -- %s\ndescription length: %d | loc: %s | all day: %t",
		e.ID,
		e.StartDate.Format(dateTimeFormat),
		e.EndDate.Format(dateTimeFormat),
		e.Summary,
		len(e.Description),
		e.Location,
		e.AllDay,
	)
}

func (e Event) LocalStart() time.Time {
	return e.StartDate.In(time.Local)
}

func (e Event) LocalEnd() time.Time {
	return e.EndDate.In(time.Local)
}

// Dirname is the local start date and time followed by the summary,
// e.g. "2024-01-10-09_30-Dentist".
func (e Event) Dirname() string {
	return e.LocalStart().Format("2006-01-02-15_04") + "-" + e.Summary
}

// Notename is the markdown file name for the event's notes.
func (e Event) Notename() string {
	return e.Dirname() + ".md"
}

// Attendee is a single row of the Participant table.
type Attendee struct {
	IdentityID  int64
	Email       string
	PhoneNumber string
	Status      int64
}

func (a Attendee) String() string {
	return fmt.Sprintf("[identity: %d] %s | phone: %s | status: %d", a.IdentityID, a.Email, a.PhoneNumber, a.Status)
}
