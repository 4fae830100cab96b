package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guilherme-santos/maccal/calendar"
	"github.com/guilherme-santos/maccal/calendar/ics"
	"github.com/guilherme-santos/maccal/internal"
	"github.com/guilherme-santos/maccal/internal/sqlite"
)

func newMux() *calendar.Mux {
	mux := calendar.NewMux()
	mux.Register("text", calendar.Text{})
	mux.Register("notes", calendar.Notes{})
	mux.Register("ics", ics.NewPrinter())
	return mux
}

func formats() string {
	return strings.Join(newMux().Formats(), ", ")
}

func printer(format string) (internal.Printer, error) {
	return newMux().Get(format)
}

// logOutput is where progress is logged; nothing unless verbose.
func logOutput(verbose bool) io.Writer {
	if verbose {
		return flag.CommandLine.Output()
	}
	return io.Discard
}

func newStorage(verbose bool) *sqlite.Storage {
	storage := sqlite.NewStorage(logOutput(verbose))
	storage.Verbose = verbose
	return storage
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(flag.CommandLine.Output())
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage of %s %s:\n", os.Args[0], fs.Name())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
	}
	return fs
}
