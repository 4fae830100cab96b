package sqlite

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/guilherme-santos/maccal/internal"
	"github.com/guilherme-santos/maccal/internal/sqlite/sqlitetest"
)

func newFixture(t *testing.T) (string, *sqlitetest.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Calendar.sqlitedb")
	db, err := sqlitetest.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return path, db
}

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func date(year int, month time.Month, day int) internal.Date {
	return internal.NewDate(year, month, day, time.Local)
}

func summaries(events []*internal.Event) []string {
	res := make([]string, len(events))
	for i, e := range events {
		res[i] = e.Summary
	}
	return res
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStorage_EventsInRange(t *testing.T) {
	path, db := newFixture(t)

	calID := db.AddCalendar("Work")
	locID := db.AddLocation("Office")
	id := db.AddItem(sqlitetest.Item{
		CalendarID:  calID,
		LocationID:  locID,
		Start:       EncodeStart(utc(2024, 1, 10, 9, 0, 0)),
		End:         EncodeEnd(utc(2024, 1, 10, 10, 0, 0)),
		Summary:     "Dentist",
		Description: "Bring the card",
		AllDay:      0,
	})

	s := NewStorage(io.Discard)
	ctx := context.Background()

	events, err := s.EventsInRange(ctx, path, date(2024, 1, 9), date(2024, 1, 11))
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("EventsInRange() got %d events, want 1", len(events))
	}

	got := *events[0]
	if want := utc(2024, 1, 10, 9, 0, 0); !got.StartDate.Equal(want) {
		t.Errorf("EventsInRange() StartDate = %v, want %v", got.StartDate, want)
	}
	if want := utc(2024, 1, 10, 10, 0, 0); !got.EndDate.Equal(want) {
		t.Errorf("EventsInRange() EndDate = %v, want %v", got.EndDate, want)
	}
	got.StartDate, got.EndDate = time.Time{}, time.Time{}
	want := internal.Event{
		ID:          id,
		Calendar:    "Work",
		Summary:     "Dentist",
		Description: "Bring the card",
		Location:    "Office",
	}
	if got != want {
		t.Errorf("EventsInRange() got %+v, want %+v", got, want)
	}

	events, err = s.EventsInRange(ctx, path, date(2024, 2, 1), date(2024, 2, 28))
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("EventsInRange() got %d events, want 0", len(events))
	}
}

func TestStorage_EventsInRangeBounds(t *testing.T) {
	path, db := newFixture(t)

	for summary, start := range map[string]time.Time{
		"before":      utc(2024, 1, 8, 23, 59, 59),
		"first":       utc(2024, 1, 9, 0, 0, 0),
		"last":        utc(2024, 1, 11, 23, 59, 59),
		"after":       utc(2024, 1, 12, 0, 0, 0),
		"long before": utc(2023, 6, 1, 12, 0, 0),
	} {
		db.AddItem(sqlitetest.Item{
			Start:   EncodeStart(start),
			End:     EncodeEnd(start.Add(time.Hour)),
			Summary: summary,
		})
	}

	window := internal.Window{Start: date(2024, 1, 9), End: date(2024, 1, 11)}
	events, err := NewStorage(io.Discard).EventsInRange(context.Background(), path, window.Start, window.End)
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	if got, want := summaries(events), []string{"first", "last"}; !equal(got, want) {
		t.Errorf("EventsInRange() got %v, want %v", got, want)
	}
	for _, e := range events {
		if !window.Contains(internal.NewDateFromTime(e.StartDate)) {
			t.Errorf("EventsInRange() event %q starts %v, outside %s", e.Summary, e.StartDate, window)
		}
	}

	events, err = NewStorage(io.Discard).EventsInRange(context.Background(), path, window.End, window.Start)
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("EventsInRange() with reversed window got %d events, want 0", len(events))
	}
}

func TestStorage_EventsInRangeOrder(t *testing.T) {
	path, db := newFixture(t)

	add := func(summary string, start time.Time, allDay int) {
		db.AddItem(sqlitetest.Item{
			Start:   EncodeStart(start),
			End:     EncodeEnd(start.Add(time.Hour)),
			Summary: summary,
			AllDay:  allDay,
		})
	}
	add("noon", utc(2024, 1, 10, 12, 0, 0), 0)
	add("morning all day", utc(2024, 1, 10, 9, 0, 0), 1)
	add("morning", utc(2024, 1, 10, 9, 0, 0), 0)
	add("day before", utc(2024, 1, 9, 18, 0, 0), 0)

	events, err := NewStorage(io.Discard).EventsInRange(context.Background(), path, date(2024, 1, 1), date(2024, 1, 31))
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	want := []string{"day before", "morning", "morning all day", "noon"}
	if got := summaries(events); !equal(got, want) {
		t.Errorf("EventsInRange() got %v, want %v", got, want)
	}
	if !events[2].AllDay {
		t.Errorf("EventsInRange() %q AllDay = false, want true", events[2].Summary)
	}
}

func TestStorage_EventsInRangeDefaults(t *testing.T) {
	path, db := newFixture(t)

	start := utc(2024, 1, 10, 9, 0, 0)
	db.AddItem(sqlitetest.Item{
		CalendarID:  99,
		Start:       EncodeStart(start),
		End:         "tomorrow",
		Summary:     nil,
		Description: "notes",
		AllDay:      "maybe",
	})

	before := naive(time.Now())
	events, err := NewStorage(io.Discard).EventsInRange(context.Background(), path, date(2024, 1, 9), date(2024, 1, 11))
	after := naive(time.Now())
	if err != nil {
		t.Fatalf("EventsInRange() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("EventsInRange() got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Summary != internal.NotAvailable {
		t.Errorf("Summary = %q, want %q", e.Summary, internal.NotAvailable)
	}
	if e.Calendar != internal.NotAvailable {
		t.Errorf("Calendar = %q, want %q", e.Calendar, internal.NotAvailable)
	}
	if e.Location != internal.NotAvailable {
		t.Errorf("Location = %q, want %q", e.Location, internal.NotAvailable)
	}
	if e.AllDay {
		t.Errorf("AllDay = true, want false")
	}
	if e.Description != "notes" {
		t.Errorf("Description = %q, want %q", e.Description, "notes")
	}
	if !e.StartDate.Equal(start) {
		t.Errorf("StartDate = %v, want %v", e.StartDate, start)
	}
	if e.EndDate.Before(before) || e.EndDate.After(after) {
		t.Errorf("EndDate = %v, want now", e.EndDate)
	}
}

func TestStorage_EventsForAttendee(t *testing.T) {
	path, db := newFixture(t)

	add := func(summary string, start time.Time) int64 {
		return db.AddItem(sqlitetest.Item{
			Start:   EncodeStart(start),
			End:     EncodeEnd(start.Add(time.Hour)),
			Summary: summary,
		})
	}
	standup := add("standup", utc(2024, 1, 10, 9, 0, 0))
	review := add("review", utc(2024, 2, 1, 14, 0, 0))
	party := add("party", utc(2024, 3, 1, 20, 0, 0))

	db.AddParticipant(sqlitetest.Participant{OwnerID: standup, IdentityID: 7, Email: "ana@example.com"})
	db.AddParticipant(sqlitetest.Participant{OwnerID: review, IdentityID: 7, Email: "ana@example.com"})
	db.AddParticipant(sqlitetest.Participant{OwnerID: review, IdentityID: 7, Email: "ana@example.com"})
	db.AddParticipant(sqlitetest.Participant{OwnerID: 999, IdentityID: 7, Email: "ana@example.com"})
	db.AddParticipant(sqlitetest.Participant{OwnerID: party, IdentityID: 8, Email: "bob@example.com"})

	s := NewStorage(io.Discard)
	ctx := context.Background()

	events, err := s.EventsForAttendee(ctx, path, 7)
	if err != nil {
		t.Fatalf("EventsForAttendee() error = %v", err)
	}
	if got, want := summaries(events), []string{"review", "standup"}; !equal(got, want) {
		t.Errorf("EventsForAttendee() got %v, want %v", got, want)
	}

	events, err = s.EventsForAttendee(ctx, path, 42)
	if err != nil {
		t.Fatalf("EventsForAttendee() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("EventsForAttendee() got %d events, want 0", len(events))
	}
}

func TestStorage_Attendees(t *testing.T) {
	path, db := newFixture(t)

	start := utc(2024, 1, 10, 9, 0, 0)
	id := db.AddItem(sqlitetest.Item{Start: EncodeStart(start), End: EncodeEnd(start), Summary: "standup"})
	other := db.AddItem(sqlitetest.Item{Start: EncodeStart(start), End: EncodeEnd(start), Summary: "lunch"})

	db.AddParticipant(sqlitetest.Participant{OwnerID: id, IdentityID: 7, Email: "ana@example.com", PhoneNumber: "+5511999999999", Status: 1})
	db.AddParticipant(sqlitetest.Participant{OwnerID: id, IdentityID: 8, Email: "bob@example.com", Status: 2})
	db.AddParticipant(sqlitetest.Participant{OwnerID: other, IdentityID: 9, Email: "eve@example.com"})

	attendees, err := NewStorage(io.Discard).Attendees(context.Background(), path, id)
	if err != nil {
		t.Fatalf("Attendees() error = %v", err)
	}
	want := []internal.Attendee{
		{IdentityID: 7, Email: "ana@example.com", PhoneNumber: "+5511999999999", Status: 1},
		{IdentityID: 8, Email: "bob@example.com", PhoneNumber: internal.NotAvailable, Status: 2},
	}
	if len(attendees) != len(want) {
		t.Fatalf("Attendees() got %d attendees, want %d", len(attendees), len(want))
	}
	for i := range want {
		if *attendees[i] != want[i] {
			t.Errorf("Attendees()[%d] got %+v, want %+v", i, *attendees[i], want[i])
		}
	}
}

func TestStorage_OpenErrors(t *testing.T) {
	s := NewStorage(io.Discard)
	ctx := context.Background()

	missing := filepath.Join(t.TempDir(), "missing.sqlitedb")
	if _, err := s.EventsInRange(ctx, missing, date(2024, 1, 1), date(2024, 1, 31)); err == nil {
		t.Errorf("EventsInRange() on a missing file: error = nil")
	}
	if _, err := os.Stat(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("EventsInRange() created %s", missing)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.sqlitedb")
	if err := os.WriteFile(garbage, []byte("this is not a database, only some text long enough to matter"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.EventsForAttendee(ctx, garbage, 1); err == nil {
		t.Errorf("EventsForAttendee() on a garbage file: error = nil")
	}
}
