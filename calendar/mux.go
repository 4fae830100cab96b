package calendar

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/guilherme-santos/maccal/internal"
)

var ErrUnknownFormat = errors.New("calendar: unknown format")

type Mux struct {
	mu       sync.Mutex
	printers map[string]internal.Printer
}

func NewMux() *Mux {
	return &Mux{
		printers: make(map[string]internal.Printer),
	}
}

func (m *Mux) Get(format string) (internal.Printer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.printers[format]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return p, nil
}

func (m *Mux) Register(format string, p internal.Printer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.printers[format] = p
}

// Formats returns the registered format names, sorted.
func (m *Mux) Formats() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	formats := make([]string, 0, len(m.printers))
	for f := range m.printers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
