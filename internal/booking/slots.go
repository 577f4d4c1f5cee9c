// Package booking contains the pure table-plan logic of the back office:
// the fixed slot grid, the availability resolver, the table-combination
// validator and the per-table occupancy aggregator.  Nothing in this
// package touches the database; handlers load the relevant rows and map
// them into the lightweight types defined here.
package booking

import (
	"errors"
	"fmt"
	"time"
)

// Grid describes the fixed reservation slot grid of the house.  All
// values are minutes from midnight.  Slots start at OpenMin and repeat
// every SlotMin until CloseMin (exclusive).  DwellMin is the default
// occupation length of a party and defines the window a reservation
// blocks on the grid.
type Grid struct {
	OpenMin   int          // first bookable slot
	CloseMin  int          // end of service, no slot starts at or after this
	SlotMin   int          // slot width
	DwellMin  int          // default occupation length
	ClosedDay time.Weekday // fixed weekly closing day
}

// ErrBadClock indicates a time string that is not of the form "HH:MM".
var ErrBadClock = errors.New("invalid clock time")

// ErrBadDate indicates a date string that is not of the form "YYYY-MM-DD".
var ErrBadDate = errors.New("invalid date")

// ParseClock converts an "HH:MM" string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrBadClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as an "HH:MM" string.
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseDate validates a "YYYY-MM-DD" date string and returns its time
// value at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// Closed reports whether the given date falls on the weekly closing day.
// Unparseable dates are treated as closed so that bad input never
// produces open slots.
func (g Grid) Closed(date string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return true
	}
	return t.Weekday() == g.ClosedDay
}

// SlotsForDate returns the slot start times (minutes from midnight) for
// the given date.  The closing day and invalid dates yield no slots.
func (g Grid) SlotsForDate(date string) []int {
	if g.Closed(date) || g.SlotMin <= 0 {
		return nil
	}
	var slots []int
	for s := g.OpenMin; s < g.CloseMin; s += g.SlotMin {
		slots = append(slots, s)
	}
	return slots
}

// Window returns the occupation window [start, start+DwellMin) for a
// slot starting at the given minute.
func (g Grid) Window(startMin int) (int, int) {
	return startMin, startMin + g.DwellMin
}

// overlaps reports whether the half-open windows [aStart,aEnd) and
// [bStart,bEnd) intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
