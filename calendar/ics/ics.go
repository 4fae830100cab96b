// Package ics prints events as an iCalendar (RFC 5545) document.
package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/guilherme-santos/maccal/internal"
)

const DefaultProductID = "-//maccal//Calendar.app export//EN"

type Printer struct {
	ProductID string

	now func() time.Time
}

func NewPrinter() *Printer {
	return &Printer{
		ProductID: DefaultProductID,
		now:       time.Now,
	}
}

// Print writes a VCALENDAR holding one VEVENT per event. Nothing is written
// when there are no events, since a calendar needs at least one component.
func (p Printer) Print(w io.Writer, events []*internal.Event) error {
	if len(events) == 0 {
		return nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, p.ProductID)

	now := p.now
	if now == nil {
		now = time.Now
	}
	stamp := now().UTC()
	for _, e := range events {
		cal.Children = append(cal.Children, newEvent(e, stamp).Component)
	}

	err := ical.NewEncoder(w).Encode(cal)
	if err != nil {
		return fmt.Errorf("ics: encoding calendar: %w", err)
	}
	return nil
}

func UID(e *internal.Event) string {
	return fmt.Sprintf("%d@maccal", e.ID)
}

func newEvent(e *internal.Event, stamp time.Time) *ical.Event {
	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, UID(e))
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	vevent.Props.SetText(ical.PropSummary, e.Summary)

	if e.Description != internal.NotAvailable && e.Description != "" {
		vevent.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != internal.NotAvailable && e.Location != "" {
		vevent.Props.SetText(ical.PropLocation, e.Location)
	}
	if e.Calendar != internal.NotAvailable {
		vevent.Props.SetText(ical.PropCategories, e.Calendar)
	}

	if e.AllDay {
		vevent.Props.SetDate(ical.PropDateTimeStart, e.StartDate)
		vevent.Props.SetDate(ical.PropDateTimeEnd, e.EndDate)
	} else {
		vevent.Props.SetDateTime(ical.PropDateTimeStart, e.StartDate.UTC())
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, e.EndDate.UTC())
	}
	return vevent
}
