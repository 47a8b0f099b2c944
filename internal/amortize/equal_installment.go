package amortize

import (
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/krediplan/krediplan/internal/schedule"
	"github.com/shopspring/decimal"
)

// EqualInstallmentAmortizer keeps the total installment constant over the
// term, annuity-style. The installment is sized with a BSMV-loaded period
// rate so interest, tax and principal together always fill the same amount.
type EqualInstallmentAmortizer struct {
	Money domain.MoneyContext
}

// NewEqualInstallmentAmortizer creates an equal-installment amortizer with
// the given money context.
func NewEqualInstallmentAmortizer(mc domain.MoneyContext) *EqualInstallmentAmortizer {
	return &EqualInstallmentAmortizer{Money: mc}
}

func (a *EqualInstallmentAmortizer) Name() string { return string(domain.EqualInstallment) }

// Calculate produces the amortization rows for the given terms and payment
// periods. The fixed accrual convention is the only one that applies to
// equal-installment loans.
//
// Per period, interest and BSMV are rounded independently and the principal
// is the residual that tops the row up to the constant installment, so all
// rounding error lands in the principal split, never in the reported
// installment. The outstanding balance therefore converges to about zero
// but may carry a residual of a few cents after the final installment;
// that residual is an accepted property of the method, not redistributed.
func (a *EqualInstallmentAmortizer) Calculate(terms *domain.LoanTerms, periods []domain.PaymentPeriod) ([]domain.AmortizationRow, error) {
	rows := make([]domain.AmortizationRow, 0, len(periods)+1)
	remaining := terms.Principal

	if terms.CommissionRate.GreaterThan(decimal.Zero) {
		rows = append(rows, commissionRow(terms, a.Money))
	}
	if len(periods) == 0 {
		return rows, nil
	}

	rate := schedule.FixedAccrual{}.PeriodRate(terms.MonthlyInterestRate, terms.PaymentFrequency, 0)
	installment := a.fixedInstallment(terms, rate, len(periods))

	for _, p := range periods {
		interest := a.Money.Round(remaining.Mul(rate))
		bsmv := a.Money.Round(interest.Mul(terms.BSMVRate))
		principal := a.Money.Round(installment.Sub(interest).Sub(bsmv))
		remaining = remaining.Sub(principal)

		rows = append(rows, domain.AmortizationRow{
			InstallmentNumber:  p.InstallmentNumber,
			PaymentDate:        p.PaymentDate,
			AccrualDays:        p.FixedAccrualDays,
			PrincipalPayment:   principal,
			InterestPayment:    interest,
			BSMV:               bsmv,
			CommissionPayment:  decimal.Zero,
			InstallmentAmount:  principal.Add(interest).Add(bsmv),
			RemainingPrincipal: a.Money.Round(remaining),
		})
	}

	return rows, nil
}

// fixedInstallment sizes the constant installment T with the standard
// annuity closed form over the BSMV-loaded period rate:
//
//	T = P * r'(1+r')^n / ((1+r')^n - 1),  r' = r + r*bsmv
//
// T is kept unrounded here; rounding happens row by row. A zero rate
// degenerates the annuity into a straight split of the principal.
func (a *EqualInstallmentAmortizer) fixedInstallment(terms *domain.LoanTerms, rate decimal.Decimal, numPeriods int) decimal.Decimal {
	n := decimal.NewFromInt(int64(numPeriods))
	ratePrime := rate.Add(rate.Mul(terms.BSMVRate))
	if ratePrime.IsZero() {
		return a.Money.Div(terms.Principal, n)
	}
	onePlusPow := decimal.NewFromInt(1).Add(ratePrime).Pow(n)
	return a.Money.Div(terms.Principal.Mul(ratePrime).Mul(onePlusPow), onePlusPow.Sub(decimal.NewFromInt(1)))
}
