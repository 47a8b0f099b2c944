package calendar

import "time"

// TurkeyCalendar implements the Turkish public-holiday calendar: weekends,
// the fixed-date national holidays, and the movable religious holidays
// (Ramazan Bayramı and Kurban Bayramı) for the covered year range.
type TurkeyCalendar struct{}

func (TurkeyCalendar) IsNonBusinessDay(t time.Time) bool {
	if isWeekend(t) {
		return true
	}
	if isTurkishNationalHoliday(t) {
		return true
	}
	_, ok := turkeyReligiousHolidays[t.Format("2006-01-02")]
	return ok
}

// isTurkishNationalHoliday covers the fixed-date holidays, which fall on
// the same month and day every year.
func isTurkishNationalHoliday(t time.Time) bool {
	switch {
	case t.Month() == time.January && t.Day() == 1: // Yılbaşı
		return true
	case t.Month() == time.April && t.Day() == 23: // Ulusal Egemenlik ve Çocuk Bayramı
		return true
	case t.Month() == time.May && t.Day() == 1: // Emek ve Dayanışma Günü
		return true
	case t.Month() == time.May && t.Day() == 19: // Atatürk'ü Anma, Gençlik ve Spor Bayramı
		return true
	case t.Month() == time.July && t.Day() == 15: // Demokrasi ve Milli Birlik Günü
		return true
	case t.Month() == time.August && t.Day() == 30: // Zafer Bayramı
		return true
	case t.Month() == time.October && t.Day() == 29: // Cumhuriyet Bayramı
		return true
	}
	return false
}

// turkeyReligiousHolidays lists the lunar-calendar holidays that cannot be
// derived from a fixed rule: three days of Ramazan Bayramı and four days of
// Kurban Bayramı per year.
var turkeyReligiousHolidays = map[string]struct{}{}

func init() {
	for _, d := range turkeyReligiousHolidayList {
		turkeyReligiousHolidays[d] = struct{}{}
	}
}

var turkeyReligiousHolidayList = []string{
	// Ramazan Bayramı
	"2024-04-10", "2024-04-11", "2024-04-12",
	"2025-03-30", "2025-03-31", "2025-04-01",
	"2026-03-20", "2026-03-21", "2026-03-22",
	"2027-03-09", "2027-03-10", "2027-03-11",
	// Kurban Bayramı
	"2024-06-16", "2024-06-17", "2024-06-18", "2024-06-19",
	"2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09",
	"2026-05-27", "2026-05-28", "2026-05-29", "2026-05-30",
	"2027-05-16", "2027-05-17", "2027-05-18", "2027-05-19",
}
