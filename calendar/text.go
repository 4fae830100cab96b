package calendar

import (
	"fmt"
	"io"

	"github.com/guilherme-santos/maccal/internal"
)

// Text prints every event in its two-line summary form.
type Text struct{}

func (Text) Print(w io.Writer, events []*internal.Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Notes prints the note file name of every event, one per line.
type Notes struct{}

func (Notes) Print(w io.Writer, events []*internal.Event) error {
	for _, e := range events {
		if _, err := fmt.Fprintln(w, e.Notename()); err != nil {
			return err
		}
	}
	return nil
}
