// Package calendar answers the single question the schedule engine needs
// from the outside world: is a given date a non-business day in a given
// jurisdiction? Weekends are non-business everywhere; public holidays come
// from per-jurisdiction date sets.
package calendar

import "time"

// Jurisdiction identifies a holiday calendar.
type Jurisdiction string

const (
	Turkey Jurisdiction = "TR"
)

// BusinessCalendar is the predicate the date scheduler consults. It must be
// referentially transparent: the same date always yields the same answer
// within one calculation.
type BusinessCalendar interface {
	IsNonBusinessDay(t time.Time) bool
}

// CalendarFunc adapts a plain function to the BusinessCalendar interface.
type CalendarFunc func(t time.Time) bool

func (f CalendarFunc) IsNonBusinessDay(t time.Time) bool { return f(t) }

// WeekendOnly treats Saturdays and Sundays as the only non-business days.
// It is the fallback for jurisdictions without holiday data.
var WeekendOnly = CalendarFunc(isWeekend)

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ForJurisdiction returns the calendar for a jurisdiction, falling back to
// the weekend-only calendar when no holiday data is available.
func ForJurisdiction(j Jurisdiction) BusinessCalendar {
	switch j {
	case Turkey:
		return TurkeyCalendar{}
	default:
		return WeekendOnly
	}
}
