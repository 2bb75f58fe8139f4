package timeutil

import (
	"time"
)

// Location is the timezone all calendar comparisons run in. The shop is a
// single local deployment, so it defaults to the host's local zone and can be
// overridden once at startup from config (SetLocation).
var Location *time.Location = time.Local

// SetLocation switches the calendar timezone to the named IANA zone.
// An unknown name keeps the current location and reports the error.
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	Location = loc
	return nil
}

// Now returns the current time in the configured location
func Now() time.Time {
	return time.Now().In(Location)
}

// In converts any time to the configured location
func In(t time.Time) time.Time {
	return t.In(Location)
}

// SameDay reports whether a and b fall on the same calendar day in the
// configured location. Component comparison, not a 24h window.
func SameDay(a, b time.Time) bool {
	a, b = a.In(Location), b.In(Location)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same calendar month and year
// in the configured location.
func SameMonth(a, b time.Time) bool {
	a, b = a.In(Location), b.In(Location)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// StartOfDay returns the start of day (00:00:00) in the configured location
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
