// Package engine orchestrates a full schedule calculation: payment
// calendar, amortization and summary. Each run is a pure function of the
// loan terms and the business-day calendar, so runs for different loans may
// proceed concurrently with no coordination.
package engine

import (
	"github.com/krediplan/krediplan/internal/amortize"
	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/krediplan/krediplan/internal/schedule"
	"github.com/krediplan/krediplan/internal/summarize"
)

// Engine wires the scheduler, the amortizers and the aggregator together.
type Engine struct {
	Scheduler  *schedule.Scheduler
	Aggregator *summarize.Aggregator
	Money      domain.MoneyContext
}

// NewEngine creates an engine over the given business-day calendar with the
// standard cents money context.
func NewEngine(cal calendar.BusinessCalendar) *Engine {
	return NewEngineWithMoney(cal, domain.Cents)
}

// NewEngineWithMoney creates an engine with an explicit money context.
func NewEngineWithMoney(cal calendar.BusinessCalendar, mc domain.MoneyContext) *Engine {
	return &Engine{
		Scheduler:  schedule.NewScheduler(cal),
		Aggregator: summarize.NewAggregator(mc),
		Money:      mc,
	}
}

// Run computes the complete schedule result for the given terms and
// amortization style.
func (e *Engine) Run(terms *domain.LoanTerms, style domain.AmortizationStyle) (*domain.ScheduleResult, error) {
	periods, err := e.Scheduler.Generate(terms)
	if err != nil {
		return nil, err
	}

	amortizer := amortize.CreateAmortizer(style, e.Money)
	rows, err := amortizer.Calculate(terms, periods)
	if err != nil {
		return nil, err
	}

	summary, err := e.Aggregator.Summarize(terms, rows)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleResult{
		Terms:    *terms,
		Style:    style,
		Rows:     rows,
		Summary:  *summary,
		Calendar: schedule.CalendarView(periods),
	}, nil
}
