package view

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guilherme-santos/maccal/internal"
)

type (
	Date   = internal.Date
	Event  = internal.Event
	Window = internal.Window
)

type Repository interface {
	EventsInRange(_ context.Context, dbPath string, from, to Date) ([]*Event, error)
}

// today is replaced in tests.
var today = internal.Today

// View keeps the events of a database inside a window of dates. Every change
// to the window reloads the events; when reloading fails, neither the window
// nor the events change.
//
// A View must not be used from multiple goroutines at once.
type View struct {
	output io.Writer
	repo   Repository
	dbPath string
	cfg    internal.WindowConfig

	window Window
	events []*Event
}

// New creates a View over dbPath with cfg's window relative to today, and
// loads its events.
func New(ctx context.Context, output io.Writer, repo Repository, dbPath string, cfg internal.WindowConfig) (*View, error) {
	if output == nil {
		output = os.Stdout
	}
	v := &View{
		output: output,
		repo:   repo,
		dbPath: dbPath,
		cfg:    cfg,
	}
	err := v.load(ctx, cfg.Window(today()))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (v *View) DBPath() string {
	return v.dbPath
}

func (v *View) Window() Window {
	return v.window
}

// Events returns the events loaded for the current window, ordered by start
// date. The slice must not be modified.
func (v *View) Events() []*Event {
	return v.events
}

// Refresh reloads the events of the current window.
func (v *View) Refresh(ctx context.Context) error {
	return v.load(ctx, v.window)
}

// ExtendStartEarlier moves the start of the window weeks earlier. Negative
// values move it later.
func (v *View) ExtendStartEarlier(ctx context.Context, weeks int) error {
	w := v.window
	w.Start = w.Start.AddWeeks(-weeks)
	return v.load(ctx, w)
}

// ExtendEndLater moves the end of the window weeks later. Negative values
// move it earlier.
func (v *View) ExtendEndLater(ctx context.Context, weeks int) error {
	w := v.window
	w.End = w.End.AddWeeks(weeks)
	return v.load(ctx, w)
}

// ResetToDefault sets the window back to the configured one, relative to
// today rather than to when the View was created.
func (v *View) ResetToDefault(ctx context.Context) error {
	return v.load(ctx, v.cfg.Window(today()))
}

func (v *View) load(ctx context.Context, w Window) error {
	events, err := v.repo.EventsInRange(ctx, v.dbPath, w.Start, w.End)
	if err != nil {
		logf(v.output, &w, "Unable to load events: %v", err)
		return fmt.Errorf("view: loading events %s: %w", w, err)
	}
	v.window = w
	v.events = events
	logf(v.output, &w, "%s loaded", pluralEvents(len(events)))
	return nil
}
