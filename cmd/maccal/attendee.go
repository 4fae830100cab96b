package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/guilherme-santos/maccal/file"
)

var AttendeeCommand = _attendeeCommand{
	Name:        "attendee",
	Description: "List every event of an attendee, most recent first",
}

type _attendeeCommand struct {
	Name        string
	Description string
}

func (s _attendeeCommand) Run(ctx context.Context, w io.Writer, conf *file.Config, verbose bool, args []string) error {
	var id int64

	fs := newFlagSet(s.Name)
	fs.Int64Var(&id, "id", 1, "identity id of the attendee")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		var err error
		id, err = strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid attendee id %q", fs.Arg(0))
		}
	}

	p, err := printer(conf.Format)
	if err != nil {
		return err
	}

	events, err := newStorage(verbose).EventsForAttendee(ctx, conf.DatabasePath(), id)
	if err != nil {
		return err
	}
	return p.Print(w, events)
}
