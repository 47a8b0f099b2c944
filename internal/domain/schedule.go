package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPeriod is one slot of the payment calendar. The nominal anchor is
// the projected date before weekend/holiday adjustment; the cadence always
// advances from nominal anchors so a single adjustment never shifts the
// periods that follow it.
type PaymentPeriod struct {
	InstallmentNumber int       `json:"installment_number"`
	NominalAnchorDate time.Time `json:"-"`
	PaymentDate       time.Time `json:"payment_date"`
	AccrualStart      time.Time `json:"accrual_start"`
	AccrualDays       int       `json:"accrual_days"`
	FixedAccrualDays  int       `json:"fixed_accrual_days"`
}

// CalendarEntry is the read-only export projection of a PaymentPeriod.
// AccrualStart and AccrualEnd are the first and last day on which interest
// accrues for the period; the payment date itself is excluded.
type CalendarEntry struct {
	Installment      int       `json:"installment"`
	PaymentDate      time.Time `json:"payment_date"`
	FixedAccrualDays int       `json:"fixed_accrual_days"`
	AccrualDays      int       `json:"accrual_days"`
	AccrualStart     time.Time `json:"accrual_start"`
	AccrualEnd       time.Time `json:"accrual_end"`
}

// AmortizationRow is one cash-flow line of the repayment schedule.
// Installment 0 is the upfront commission row; 1..N are regular
// installments. All monetary fields are rounded to cents when written, and
// InstallmentAmount always equals the sum of the other payment fields.
type AmortizationRow struct {
	InstallmentNumber  int             `json:"installment_number"`
	PaymentDate        time.Time       `json:"payment_date"`
	AccrualDays        int             `json:"accrual_days"`
	PrincipalPayment   decimal.Decimal `json:"principal_payment"`
	InterestPayment    decimal.Decimal `json:"interest_payment"`
	BSMV               decimal.Decimal `json:"bsmv"`
	CommissionPayment  decimal.Decimal `json:"commission_payment"`
	InstallmentAmount  decimal.Decimal `json:"installment_amount"`
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
}

// IsCommissionRow reports whether the row is the upfront commission row.
func (r *AmortizationRow) IsCommissionRow() bool {
	return r.InstallmentNumber == 0
}

// ScheduleSummary holds the aggregate statistics derived from a finished
// schedule. All fields are recomputed from the rows on every call; nothing
// is cached.
type ScheduleSummary struct {
	TotalLoanCost         decimal.Decimal `json:"total_loan_cost"`
	TotalInterestPaid     decimal.Decimal `json:"total_interest_paid"`
	TotalBSMVPaid         decimal.Decimal `json:"total_bsmv_paid"`
	TotalInstallmentsPaid decimal.Decimal `json:"total_installments_paid"`
	TotalCommissionPaid   decimal.Decimal `json:"total_commission_paid"`
	AverageMaturityYears  decimal.Decimal `json:"average_maturity_years"`
	AllInRatePercent      decimal.Decimal `json:"all_in_rate_percent"`
}

// ScheduleResult bundles everything one calculation produces: the echoed
// terms, the amortization rows, the derived summary and the payment
// calendar view.
type ScheduleResult struct {
	Terms    LoanTerms         `json:"terms"`
	Style    AmortizationStyle `json:"amortization_style"`
	Rows     []AmortizationRow `json:"rows"`
	Summary  ScheduleSummary   `json:"summary"`
	Calendar []CalendarEntry   `json:"calendar"`
}
