// Package summarize derives the aggregate statistics of a finished
// schedule: cost totals, principal-weighted average maturity and the all-in
// annualized rate.
package summarize

import (
	"fmt"
	"time"

	"github.com/krediplan/krediplan/internal/domain"
	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.NewFromInt(365)

// Aggregator computes ScheduleSummary values from amortization rows. It
// only depends on the row shape, never on which amortizer produced them.
type Aggregator struct {
	Money domain.MoneyContext
}

// NewAggregator creates an aggregator with the given money context.
func NewAggregator(mc domain.MoneyContext) *Aggregator {
	return &Aggregator{Money: mc}
}

// Summarize computes the totals, the weighted average maturity and the
// all-in rate for a schedule.
//
// The commission row contributes its full amount (commission plus its BSMV)
// to the commission total and to the all-in cost; regular rows contribute
// interest, BSMV and installments. TotalBSMVPaid counts BSMV from every
// row, including the commission row's.
//
// Weighted average maturity is the principal-weighted mean of each regular
// row's distance from the start date, in years over a 365-day base. The
// all-in rate annualizes the full non-principal cost of the loan over that
// maturity. A schedule that repays no principal leaves both undefined and
// fails with ErrDegenerateSchedule.
func (a *Aggregator) Summarize(terms *domain.LoanTerms, rows []domain.AmortizationRow) (*domain.ScheduleSummary, error) {
	var (
		totalCommission  decimal.Decimal
		totalBSMV        decimal.Decimal
		regularBSMV      decimal.Decimal
		totalInterest    decimal.Decimal
		totalInstallment decimal.Decimal
		weightedDays     decimal.Decimal
		totalPrincipal   decimal.Decimal
	)

	for i := range rows {
		row := &rows[i]
		totalBSMV = totalBSMV.Add(row.BSMV)
		if row.IsCommissionRow() {
			totalCommission = totalCommission.Add(row.InstallmentAmount)
			continue
		}
		totalInterest = totalInterest.Add(row.InterestPayment)
		totalInstallment = totalInstallment.Add(row.InstallmentAmount)
		regularBSMV = regularBSMV.Add(row.BSMV)

		daysFromStart := decimal.NewFromInt(int64(daysBetween(terms.StartDate, row.PaymentDate)))
		weightedDays = weightedDays.Add(row.PrincipalPayment.Mul(daysFromStart))
		totalPrincipal = totalPrincipal.Add(row.PrincipalPayment)
	}

	if totalPrincipal.IsZero() {
		return nil, fmt.Errorf("%w: total principal repaid is zero (term %d months, principal %s)",
			domain.ErrDegenerateSchedule, terms.TermMonths, terms.Principal.StringFixed(2))
	}

	maturityDays := a.Money.Div(weightedDays, totalPrincipal)
	maturityYears := a.Money.Round(a.Money.Div(maturityDays, daysPerYear))

	// All-in cost counts each paid amount exactly once: interest and its
	// BSMV from regular rows, plus the commission row's full amount (which
	// already carries the commission BSMV).
	allInCost := totalInterest.Add(regularBSMV).Add(totalCommission)
	allInRate := a.Money.Round(a.Money.Div(allInCost, maturityYears.Mul(terms.Principal)).Mul(decimal.NewFromInt(100)))

	return &domain.ScheduleSummary{
		TotalLoanCost:         totalInstallment.Add(totalCommission),
		TotalInterestPaid:     totalInterest,
		TotalBSMVPaid:         totalBSMV,
		TotalInstallmentsPaid: totalInstallment,
		TotalCommissionPaid:   totalCommission,
		AverageMaturityYears:  maturityYears,
		AllInRatePercent:      allInRate,
	}, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
