// Package amortize turns a payment calendar into cent-exact amortization
// rows. The two algorithms, equal principal and equal installment, are
// modelled as strategies selected once per calculation.
package amortize

import (
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Amortizer is the interface all amortization algorithms implement.
type Amortizer interface {
	Name() string
	Calculate(terms *domain.LoanTerms, periods []domain.PaymentPeriod) ([]domain.AmortizationRow, error)
}

// CreateAmortizer creates the amortizer for a style. Unknown styles fall
// back to equal principal.
func CreateAmortizer(style domain.AmortizationStyle, mc domain.MoneyContext) Amortizer {
	switch style {
	case domain.EqualInstallment:
		return NewEqualInstallmentAmortizer(mc)
	case domain.EqualPrincipal:
		return NewEqualPrincipalAmortizer(mc)
	default:
		return NewEqualPrincipalAmortizer(mc)
	}
}

// commissionRow builds the optional upfront commission row shared by both
// amortizers: the commission on the full principal plus its own BSMV, dated
// at the loan's start, with no principal or interest movement.
func commissionRow(terms *domain.LoanTerms, mc domain.MoneyContext) domain.AmortizationRow {
	commission := mc.Round(terms.Principal.Mul(terms.CommissionRate))
	bsmv := mc.Round(commission.Mul(terms.BSMVRate))
	return domain.AmortizationRow{
		InstallmentNumber:  0,
		PaymentDate:        terms.StartDate,
		AccrualDays:        0,
		PrincipalPayment:   decimal.Zero,
		InterestPayment:    decimal.Zero,
		BSMV:               bsmv,
		CommissionPayment:  commission,
		InstallmentAmount:  commission.Add(bsmv),
		RemainingPrincipal: mc.Round(terms.Principal),
	}
}
