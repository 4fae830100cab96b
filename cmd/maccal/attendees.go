package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/guilherme-santos/maccal/file"
)

var AttendeesCommand = _attendeesCommand{
	Name:        "attendees",
	Description: "List the attendees of an event",
}

type _attendeesCommand struct {
	Name        string
	Description string
}

func (s _attendeesCommand) Run(ctx context.Context, w io.Writer, conf *file.Config, verbose bool, args []string) error {
	var eventID int64

	fs := newFlagSet(s.Name)
	fs.Int64Var(&eventID, "event", 0, "row id of the event")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if eventID <= 0 {
		return errors.New("-event is required")
	}

	attendees, err := newStorage(verbose).Attendees(ctx, conf.DatabasePath(), eventID)
	if err != nil {
		return err
	}
	for _, a := range attendees {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}
