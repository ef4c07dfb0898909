// Package clock abstracts the current time so that calendar-dependent
// calculations (graduation estimates, profile ids) stay testable.
// No external dependencies - uses only standard library.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now.
type System struct{}

// Now returns the current wall-clock time.
func (System) Now() time.Time { return time.Now() }

// Fixed is a Clock that always reports the same instant. Intended for tests.
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return f.T }

// At returns a Fixed clock set to the given date (UTC, midnight).
func At(year, month, day int) Fixed {
	return Fixed{T: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateStamp formats a time as a YYYY-MM-DD date label.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
