package domain

import "github.com/shopspring/decimal"

// MoneyContext carries the numeric policy of a calculation: how many
// fractional digits a written monetary amount keeps, and how many digits
// intermediate divisions retain. It is passed explicitly so two concurrent
// calculations can never observe each other's precision settings.
type MoneyContext struct {
	Scale     int32 // fractional digits of a monetary amount
	Precision int32 // fractional digits kept by intermediate divisions
}

// Cents is the standard context for Turkish lira schedules: amounts rounded
// to two fractional digits, intermediates carried at sixteen.
var Cents = MoneyContext{Scale: 2, Precision: 16}

// Round rounds a monetary amount to the context's scale. Halves round away
// from zero, which matches banking half-up rounding for the non-negative
// amounts that appear in a schedule.
func (mc MoneyContext) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(mc.Scale)
}

// Div divides at the context's intermediate precision instead of relying on
// the package-wide decimal.DivisionPrecision setting.
func (mc MoneyContext) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, mc.Precision)
}
