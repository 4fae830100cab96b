package internal

import "fmt"

// Window is an inclusive range of calendar dates.
type Window struct {
	Start Date
	End   Date
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s]", w.Start, w.End)
}

// Contains reports whether the calendar date of d falls inside the window.
// Dates are compared by their YYYY-MM-DD form, so their locations don't matter.
func (w Window) Contains(d Date) bool {
	day := d.String()
	return day >= w.Start.String() && day <= w.End.String()
}

// WindowConfig describes a window relative to a given day.
type WindowConfig struct {
	DaysBefore int
	WeeksAfter int
}

// DefaultWindowConfig observes from yesterday through twelve weeks ahead.
var DefaultWindowConfig = WindowConfig{
	DaysBefore: 1,
	WeeksAfter: 12,
}

func (c WindowConfig) Window(today Date) Window {
	return Window{
		Start: today.AddDate(0, 0, -c.DaysBefore),
		End:   today.AddWeeks(c.WeeksAfter),
	}
}
