package amortize

import (
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/krediplan/krediplan/internal/schedule"
	"github.com/shopspring/decimal"
)

// EqualPrincipalAmortizer repays the loan in equal principal slices. Each
// installment carries the fixed principal plus simple interest on the
// outstanding balance and the BSMV on that interest, so installments shrink
// as the balance falls.
type EqualPrincipalAmortizer struct {
	Money domain.MoneyContext
}

// NewEqualPrincipalAmortizer creates an equal-principal amortizer with the
// given money context.
func NewEqualPrincipalAmortizer(mc domain.MoneyContext) *EqualPrincipalAmortizer {
	return &EqualPrincipalAmortizer{Money: mc}
}

func (a *EqualPrincipalAmortizer) Name() string { return string(domain.EqualPrincipal) }

// Calculate produces the amortization rows for the given terms and payment
// periods.
//
// The per-period principal is principal/numPeriods rounded to cents, and
// the outstanding balance is decremented by that rounded value, so when the
// principal divides evenly to the cent the final balance lands on exactly
// 0.00. Any residual cent from an uneven division stays in the final row
// without redistribution.
func (a *EqualPrincipalAmortizer) Calculate(terms *domain.LoanTerms, periods []domain.PaymentPeriod) ([]domain.AmortizationRow, error) {
	rows := make([]domain.AmortizationRow, 0, len(periods)+1)
	remaining := terms.Principal

	if terms.CommissionRate.GreaterThan(decimal.Zero) {
		rows = append(rows, commissionRow(terms, a.Money))
	}
	if len(periods) == 0 {
		return rows, nil
	}

	fixedPrincipal := a.Money.Round(a.Money.Div(terms.Principal, decimal.NewFromInt(int64(len(periods)))))
	conv := schedule.ConventionFor(terms, a.Money)

	for _, p := range periods {
		rate := conv.PeriodRate(terms.MonthlyInterestRate, terms.PaymentFrequency, p.AccrualDays)
		interest := a.Money.Round(remaining.Mul(rate))
		bsmv := a.Money.Round(interest.Mul(terms.BSMVRate))
		installment := fixedPrincipal.Add(interest).Add(bsmv)
		remaining = remaining.Sub(fixedPrincipal)

		accrualDays := p.FixedAccrualDays
		if terms.UseVariableAccrualDays {
			accrualDays = p.AccrualDays
		}

		rows = append(rows, domain.AmortizationRow{
			InstallmentNumber:  p.InstallmentNumber,
			PaymentDate:        p.PaymentDate,
			AccrualDays:        accrualDays,
			PrincipalPayment:   fixedPrincipal,
			InterestPayment:    interest,
			BSMV:               bsmv,
			CommissionPayment:  decimal.Zero,
			InstallmentAmount:  installment,
			RemainingPrincipal: a.Money.Round(remaining),
		})
	}

	return rows, nil
}
