package main

import (
	"context"
	"io"

	"github.com/guilherme-santos/maccal/file"
	"github.com/guilherme-santos/maccal/internal/view"
)

var ListCommand = _listCommand{
	Name:        "list",
	Description: "List the events of the configured window, by default from yesterday to 12 weeks ahead",
}

type _listCommand struct {
	Name        string
	Description string
}

func (s _listCommand) Run(ctx context.Context, w io.Writer, conf *file.Config, verbose bool, args []string) error {
	var weeksBefore, weeksAfter int

	fs := newFlagSet(s.Name)
	fs.IntVar(&weeksBefore, "weeks-before", 0, "start the window this many weeks earlier")
	fs.IntVar(&weeksAfter, "weeks-after", 0, "end the window this many weeks later")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := printer(conf.Format)
	if err != nil {
		return err
	}

	v, err := view.New(ctx, logOutput(verbose), newStorage(verbose), conf.DatabasePath(), conf.WindowConfig())
	if err != nil {
		return err
	}
	if weeksBefore != 0 {
		if err := v.ExtendStartEarlier(ctx, weeksBefore); err != nil {
			return err
		}
	}
	if weeksAfter != 0 {
		if err := v.ExtendEndLater(ctx, weeksAfter); err != nil {
			return err
		}
	}
	return p.Print(w, v.Events())
}
