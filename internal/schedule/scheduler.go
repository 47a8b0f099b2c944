// Package schedule generates the ordered payment calendar of a loan: the
// nominal payment dates implied by the cadence, their business-day
// adjustments, and the accrual day count of every period.
package schedule

import (
	"fmt"
	"time"

	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/domain"
)

// Scheduler produces PaymentPeriod sequences for loan terms against a
// business-day calendar.
type Scheduler struct {
	Calendar calendar.BusinessCalendar
}

// NewScheduler creates a scheduler. A nil calendar falls back to the
// weekend-only calendar.
func NewScheduler(cal calendar.BusinessCalendar) *Scheduler {
	if cal == nil {
		cal = calendar.WeekendOnly
	}
	return &Scheduler{Calendar: cal}
}

// Generate builds the ordered payment periods for the given terms.
//
// The cadence is anchored on the start date's day of month. A nominal
// cursor advances by exactly one frequency interval per period; each
// anchor's day is restored to the target day, clamped to the month's last
// day when the month is shorter. The payment date rolls forward from the
// anchor over weekends and holidays, but the roll is local to its period:
// the cursor keeps advancing from the previous nominal anchor, so a single
// adjustment never drifts the cadence of later periods.
//
// Accrual for period k runs from the previous payment date (the start date
// for k=1) up to, but not including, payment date k.
func (s *Scheduler) Generate(terms *domain.LoanTerms) ([]domain.PaymentPeriod, error) {
	freq := terms.PaymentFrequency
	if !freq.IsValid() {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidFrequency, string(freq))
	}

	months := freq.Months()
	numPeriods := terms.TermMonths / months
	targetDay := terms.StartDate.Day()

	periods := make([]domain.PaymentPeriod, 0, numPeriods)
	nominal := terms.StartDate
	accrualStart := terms.StartDate

	for k := 1; k <= numPeriods; k++ {
		nominal = addMonthsClamped(nominal, months)
		anchor := setDayClamped(nominal, targetDay)

		payment := anchor
		for s.Calendar.IsNonBusinessDay(payment) {
			payment = payment.AddDate(0, 0, 1)
		}

		periods = append(periods, domain.PaymentPeriod{
			InstallmentNumber: k,
			NominalAnchorDate: anchor,
			PaymentDate:       payment,
			AccrualStart:      accrualStart,
			AccrualDays:       daysBetween(accrualStart, payment),
			FixedAccrualDays:  freq.FixedDays(),
		})
		accrualStart = payment
	}

	return periods, nil
}

// addMonthsClamped advances t by the given number of calendar months,
// clamping the day to the target month's length. time.AddDate would
// normalize Jan 31 + 1 month into March; calendar-month arithmetic must
// land in February instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// setDayClamped sets the day of month of t, clamping to the month's last
// day when the target day does not exist (the 31st in a 30-day month).
func setDayClamped(t time.Time, day int) time.Time {
	if last := daysInMonth(t.Year(), t.Month()); day > last {
		day = last
	}
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// CalendarView projects the generated periods into the export shape
// consumed by reporting collaborators. The accrual range runs from the
// first accrued day through the day before the payment date.
func CalendarView(periods []domain.PaymentPeriod) []domain.CalendarEntry {
	entries := make([]domain.CalendarEntry, 0, len(periods))
	for _, p := range periods {
		entries = append(entries, domain.CalendarEntry{
			Installment:      p.InstallmentNumber,
			PaymentDate:      p.PaymentDate,
			FixedAccrualDays: p.FixedAccrualDays,
			AccrualDays:      p.AccrualDays,
			AccrualStart:     p.AccrualStart,
			AccrualEnd:       p.PaymentDate.AddDate(0, 0, -1),
		})
	}
	return entries
}

// TotalAccrualDays sums the actual accrual days across all periods.
func TotalAccrualDays(periods []domain.PaymentPeriod) int {
	total := 0
	for _, p := range periods {
		total += p.AccrualDays
	}
	return total
}
