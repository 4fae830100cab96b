package sqlite

import (
	"time"

	"github.com/guilherme-santos/maccal/internal"
)

// Columns are scanned untyped and decoded by Convert, so a single bad value
// can't fail the whole row.
type Event struct {
	RowID       any `db:"rowid"`
	Calendar    any `db:"calendar"`
	StartDate   any `db:"start_date"`
	EndDate     any `db:"end_date"`
	Summary     any `db:"summary"`
	Description any `db:"description"`
	Location    any `db:"location"`
	AllDay      any `db:"all_day"`
}

func (e Event) Convert() *internal.Event {
	now := naive(time.Now())
	return &internal.Event{
		ID:          decodeOr(e.RowID, decodeInt, 0),
		Calendar:    decodeOr(e.Calendar, decodeString, internal.NotAvailable),
		StartDate:   decodeOr(e.StartDate, decodeStart, now),
		EndDate:     decodeOr(e.EndDate, decodeEnd, now),
		Summary:     decodeOr(e.Summary, decodeString, internal.NotAvailable),
		Description: decodeOr(e.Description, decodeString, internal.NotAvailable),
		Location:    decodeOr(e.Location, decodeString, internal.NotAvailable),
		AllDay:      decodeOr(e.AllDay, decodeBool, false),
	}
}

type Attendee struct {
	IdentityID  any `db:"identity_id"`
	Email       any `db:"email"`
	PhoneNumber any `db:"phone_number"`
	Status      any `db:"status"`
}

func (a Attendee) Convert() *internal.Attendee {
	return &internal.Attendee{
		IdentityID:  decodeOr(a.IdentityID, decodeInt, 0),
		Email:       decodeOr(a.Email, decodeString, internal.NotAvailable),
		PhoneNumber: decodeOr(a.PhoneNumber, decodeString, internal.NotAvailable),
		Status:      decodeOr(a.Status, decodeInt, 0),
	}
}
