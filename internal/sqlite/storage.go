package sqlite

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/guilherme-santos/maccal/internal"
)

const DriverName = "sqlite3"

// Storage reads events and attendees from a Calendar.app database. It keeps
// no connection: every call opens the database read-only and closes it
// before returning.
type Storage struct {
	output io.Writer

	Verbose bool
}

func NewStorage(output io.Writer) *Storage {
	if output == nil {
		output = os.Stdout
	}
	return &Storage{
		output: output,
	}
}

const eventColumns = `
	a.ROWID AS rowid,
	c.title AS calendar,
	a.start_date AS start_date,
	a.end_date AS end_date,
	a.summary AS summary,
	a.description AS description,
	l.title AS location,
	a.all_day AS all_day`

// EventsInRange returns the events whose start date falls between from and
// to, both included, ordered by start date and then all_day.
func (s Storage) EventsInRange(ctx context.Context, dbPath string, from, to internal.Date) ([]*internal.Event, error) {
	s.logf("fetching events between %s and %s from %s", from, to, dbPath)

	var rows []Event
	err := s.query(ctx, dbPath, &rows, `
		SELECT`+eventColumns+`
		FROM CalendarItem a
		LEFT JOIN Calendar c ON a.calendar_id = c.ROWID
		LEFT JOIN Location l ON a.location_id = l.ROWID
		WHERE `+startDateSQL("a.start_date")+` BETWEEN ? AND ?
		ORDER BY a.start_date ASC, a.all_day ASC
	`, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	return convertEvents(rows), nil
}

// EventsForAttendee returns the events attendeeID takes part in, most recent
// first. No date window is applied.
func (s Storage) EventsForAttendee(ctx context.Context, dbPath string, attendeeID int64) ([]*internal.Event, error) {
	s.logf("fetching events for attendee %d from %s", attendeeID, dbPath)

	var rows []Event
	err := s.query(ctx, dbPath, &rows, `
		SELECT DISTINCT`+eventColumns+`
		FROM Participant p
		INNER JOIN CalendarItem a ON p.owner_id = a.ROWID
		LEFT JOIN Calendar c ON a.calendar_id = c.ROWID
		LEFT JOIN Location l ON a.location_id = l.ROWID
		WHERE p.identity_id = ?
		ORDER BY start_date DESC
	`, attendeeID)
	if err != nil {
		return nil, err
	}
	return convertEvents(rows), nil
}

// Attendees returns the participants of the event with the given row id.
func (s Storage) Attendees(ctx context.Context, dbPath string, eventID int64) ([]*internal.Attendee, error) {
	s.logf("fetching attendees of event %d from %s", eventID, dbPath)

	var rows []Attendee
	err := s.query(ctx, dbPath, &rows, `
		SELECT identity_id, email, phone_number, status
		FROM Participant
		WHERE owner_id = ?
		ORDER BY ROWID
	`, eventID)
	if err != nil {
		return nil, err
	}

	res := make([]*internal.Attendee, len(rows))
	for i, a := range rows {
		res[i] = a.Convert()
	}
	return res, nil
}

func (s Storage) query(ctx context.Context, dbPath string, dest any, query string, args ...any) error {
	db, err := Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.SelectContext(ctx, dest, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: querying %s: %w", dbPath, err)
	}
	return nil
}

// Open connects to the database at path in read-only mode. Unlike a plain
// sql.Open, it fails when the file doesn't exist instead of creating it.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     path,
		RawQuery: "mode=ro",
	}
	db, err := sqlx.ConnectContext(ctx, DriverName, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}
	return db, nil
}

func convertEvents(rows []Event) []*internal.Event {
	res := make([]*internal.Event, len(rows))
	for i, e := range rows {
		res[i] = e.Convert()
	}
	return res
}

func (s Storage) logf(format string, a ...any) {
	if s.Verbose {
		internal.Logf(s.output, "sqlite:", nil, format, a...)
	}
}
