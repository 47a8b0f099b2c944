package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		freq   Frequency
		months int
		days   int
		valid  bool
	}{
		{Monthly, 1, 30, true},
		{Quarterly, 3, 90, true},
		{SemiAnnual, 6, 180, true},
		{Frequency("2m"), 0, 0, false},
		{Frequency(""), 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			assert.Equal(t, tt.months, tt.freq.Months())
			assert.Equal(t, tt.days, tt.freq.FixedDays())
			assert.Equal(t, tt.valid, tt.freq.IsValid())
		})
	}
}

func TestLoanTerms_NumPeriods(t *testing.T) {
	terms := &LoanTerms{TermMonths: 12, PaymentFrequency: Quarterly}
	assert.Equal(t, 4, terms.NumPeriods())

	terms.PaymentFrequency = Frequency("5m")
	assert.Equal(t, 0, terms.NumPeriods())
}

func TestMoneyContext_Round(t *testing.T) {
	// Halves round away from zero, the banking half-up convention for
	// the non-negative amounts a schedule produces.
	assert.Equal(t, "2400.13", Cents.Round(decimal.RequireFromString("2400.125")).StringFixed(2))
	assert.Equal(t, "2400.12", Cents.Round(decimal.RequireFromString("2400.1249")).StringFixed(2))
}

func TestMoneyContext_Div(t *testing.T) {
	third := Cents.Div(decimal.NewFromInt(1), decimal.NewFromInt(3))
	assert.Equal(t, "0.3333333333333333", third.String())
}
