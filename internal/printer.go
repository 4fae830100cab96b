package internal

import "io"

// Printer renders events to w, in the order given.
type Printer interface {
	Print(w io.Writer, events []*Event) error
}
