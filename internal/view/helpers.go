package view

import (
	"fmt"
	"io"

	"github.com/guilherme-santos/maccal/internal"
)

func pluralEvents(n int) string {
	if n == 1 {
		return "1 event"
	}
	return fmt.Sprintf("%d events", n)
}

func logf(w io.Writer, win *Window, format string, a ...any) {
	internal.Logf(w, "", win, format, a...)
}
