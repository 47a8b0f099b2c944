package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the payment cadence of a loan, expressed the way Turkish
// banks quote it: "1m" (monthly), "3m" (quarterly), "6m" (semiannual).
type Frequency string

const (
	Monthly    Frequency = "1m"
	Quarterly  Frequency = "3m"
	SemiAnnual Frequency = "6m"
)

// Months returns the number of calendar months in one payment period.
func (f Frequency) Months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case SemiAnnual:
		return 6
	default:
		return 0
	}
}

// FixedDays returns the fixed accrual day count for one period under the
// Turkish banking convention (30 days per month regardless of calendar).
func (f Frequency) FixedDays() int {
	return f.Months() * 30
}

// IsValid reports whether f is one of the supported payment frequencies.
func (f Frequency) IsValid() bool {
	return f.Months() != 0
}

// AmortizationStyle selects which amortization algorithm produces the
// schedule rows.
type AmortizationStyle string

const (
	EqualPrincipal   AmortizationStyle = "equal_principal"
	EqualInstallment AmortizationStyle = "equal_installment"
)

// DefaultBSMVRate is the statutory Banking and Insurance Transaction Tax
// rate applied to interest and commission when the input does not set one.
var DefaultBSMVRate = decimal.NewFromFloat(0.05)

// LoanTerms is the immutable input to a schedule calculation. Rates are
// fractions, not percentages (0.02 means 2% per month).
type LoanTerms struct {
	Principal              decimal.Decimal `yaml:"principal" json:"principal"`
	MonthlyInterestRate    decimal.Decimal `yaml:"monthly_interest_rate" json:"monthly_interest_rate"`
	CommissionRate         decimal.Decimal `yaml:"commission_rate" json:"commission_rate"`
	StartDate              time.Time       `yaml:"start_date" json:"start_date"`
	TermMonths             int             `yaml:"term_months" json:"term_months"`
	PaymentFrequency       Frequency       `yaml:"payment_frequency" json:"payment_frequency"`
	BSMVRate               decimal.Decimal `yaml:"bsmv_rate" json:"bsmv_rate"`
	UseVariableAccrualDays bool            `yaml:"use_variable_accrual_days" json:"use_variable_accrual_days"`
}

// NumPeriods returns the number of installments implied by the term and
// frequency. TermMonths must be an exact multiple of the frequency's month
// count; validation enforces that before a schedule is generated.
func (lt *LoanTerms) NumPeriods() int {
	months := lt.PaymentFrequency.Months()
	if months == 0 {
		return 0
	}
	return lt.TermMonths / months
}
