package schedule

import (
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/shopspring/decimal"
)

// AccrualConvention converts a monthly rate into the rate that applies to
// one payment period.
type AccrualConvention interface {
	Name() string
	PeriodRate(monthlyRate decimal.Decimal, freq domain.Frequency, accrualDays int) decimal.Decimal
}

// FixedAccrual is the Turkish banking convention: every period counts as
// exactly 30, 90 or 180 days, regardless of the calendar. This is the
// default, and the only convention for equal-installment loans.
type FixedAccrual struct{}

func (FixedAccrual) Name() string { return "fixed" }

func (FixedAccrual) PeriodRate(monthlyRate decimal.Decimal, freq domain.Frequency, _ int) decimal.Decimal {
	return monthlyRate.Mul(decimal.NewFromInt(int64(freq.Months())))
}

// VariableAccrual scales the monthly rate by the actual elapsed days of the
// period against a 30-day month base, so interest tracks weekend and
// holiday drift. Used only by equal-principal loans.
type VariableAccrual struct {
	Money domain.MoneyContext
}

func (VariableAccrual) Name() string { return "variable" }

func (v VariableAccrual) PeriodRate(monthlyRate decimal.Decimal, _ domain.Frequency, accrualDays int) decimal.Decimal {
	ratio := v.Money.Div(decimal.NewFromInt(int64(accrualDays)), decimal.NewFromInt(30))
	return monthlyRate.Mul(ratio)
}

// ConventionFor selects the accrual convention for the given terms.
func ConventionFor(terms *domain.LoanTerms, mc domain.MoneyContext) AccrualConvention {
	if terms.UseVariableAccrualDays {
		return VariableAccrual{Money: mc}
	}
	return FixedAccrual{}
}
