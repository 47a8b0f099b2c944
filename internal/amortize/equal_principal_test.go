package amortize

import (
	"testing"
	"time"

	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/krediplan/krediplan/internal/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func generatePeriods(t *testing.T, terms *domain.LoanTerms) []domain.PaymentPeriod {
	t.Helper()
	periods, err := schedule.NewScheduler(calendar.WeekendOnly).Generate(terms)
	require.NoError(t, err)
	return periods
}

func testTerms() *domain.LoanTerms {
	return &domain.LoanTerms{
		Principal:           decimal.NewFromInt(120000),
		MonthlyInterestRate: decimal.NewFromFloat(0.02),
		CommissionRate:      decimal.Zero,
		StartDate:           date(2024, time.January, 10),
		TermMonths:          3,
		PaymentFrequency:    domain.Monthly,
		BSMVRate:            decimal.NewFromFloat(0.05),
	}
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2), msgAndArgs...)
}

func TestEqualPrincipal_FixedConvention(t *testing.T) {
	terms := testTerms()
	periods := generatePeriods(t, terms)

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	expected := []struct {
		principal, interest, bsmv, installment, remaining string
	}{
		{"40000.00", "2400.00", "120.00", "42520.00", "80000.00"},
		{"40000.00", "1600.00", "80.00", "41680.00", "40000.00"},
		{"40000.00", "800.00", "40.00", "40840.00", "0.00"},
	}

	for i, exp := range expected {
		row := rows[i]
		assert.Equal(t, i+1, row.InstallmentNumber)
		assert.Equal(t, 30, row.AccrualDays)
		assertMoney(t, exp.principal, row.PrincipalPayment, "row %d principal", i+1)
		assertMoney(t, exp.interest, row.InterestPayment, "row %d interest", i+1)
		assertMoney(t, exp.bsmv, row.BSMV, "row %d bsmv", i+1)
		assertMoney(t, exp.installment, row.InstallmentAmount, "row %d installment", i+1)
		assertMoney(t, exp.remaining, row.RemainingPrincipal, "row %d remaining", i+1)
	}
}

func TestEqualPrincipal_CommissionRow(t *testing.T) {
	terms := testTerms()
	terms.CommissionRate = decimal.NewFromFloat(0.01)
	periods := generatePeriods(t, terms)

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	row0 := rows[0]
	assert.True(t, row0.IsCommissionRow())
	assert.Equal(t, terms.StartDate, row0.PaymentDate)
	assert.Equal(t, 0, row0.AccrualDays)
	assertMoney(t, "1200.00", row0.CommissionPayment)
	assertMoney(t, "60.00", row0.BSMV)
	assertMoney(t, "1260.00", row0.InstallmentAmount)
	assertMoney(t, "0.00", row0.PrincipalPayment)
	assertMoney(t, "120000.00", row0.RemainingPrincipal)
}

func TestEqualPrincipal_NoCommissionRowWhenRateZero(t *testing.T) {
	terms := testTerms()
	periods := generatePeriods(t, terms)

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEqual(t, 0, row.InstallmentNumber)
	}
}

func TestEqualPrincipal_VariableAccrual(t *testing.T) {
	terms := testTerms()
	terms.UseVariableAccrualDays = true
	periods := generatePeriods(t, terms)

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Period 1 spans Jan 10 -> Feb 12 (weekend roll): 33 days, so the
	// period rate is 0.02 * 33/30 = 0.022.
	assert.Equal(t, 33, rows[0].AccrualDays)
	assertMoney(t, "2640.00", rows[0].InterestPayment)
	assertMoney(t, "132.00", rows[0].BSMV)
	assertMoney(t, "42772.00", rows[0].InstallmentAmount)

	// Period 2 spans Feb 12 -> Mar 11: 28 days, rate 0.02 * 28/30.
	assert.Equal(t, 28, rows[1].AccrualDays)
	interest := domain.Cents.Round(decimal.NewFromInt(80000).Mul(
		domain.Cents.Div(decimal.NewFromFloat(0.02).Mul(decimal.NewFromInt(28)), decimal.NewFromInt(30))))
	assertMoney(t, interest.StringFixed(2), rows[1].InterestPayment)
}

func TestEqualPrincipal_RowSumInvariant(t *testing.T) {
	terms := testTerms()
	terms.CommissionRate = decimal.NewFromFloat(0.015)
	terms.TermMonths = 12
	terms.Principal = decimal.RequireFromString("250000.75")
	periods := generatePeriods(t, terms)

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)

	for _, row := range rows {
		sum := row.PrincipalPayment.Add(row.InterestPayment).Add(row.BSMV).Add(row.CommissionPayment)
		assert.True(t, row.InstallmentAmount.Equal(sum),
			"row %d: installment %s != sum %s", row.InstallmentNumber, row.InstallmentAmount, sum)
	}
}

func TestEqualPrincipal_TerminalBalance(t *testing.T) {
	// Principal divides evenly to the cent: final balance is exactly 0.00.
	terms := testTerms()
	periods := generatePeriods(t, terms)
	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	assert.True(t, rows[len(rows)-1].RemainingPrincipal.IsZero())

	// 100.00 over 3 periods leaves a one-cent residual (3 x 33.33 = 99.99),
	// which is accepted without redistribution.
	terms = testTerms()
	terms.Principal = decimal.NewFromInt(100)
	periods = generatePeriods(t, terms)
	rows, err = NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, periods)
	require.NoError(t, err)
	assertMoney(t, "33.33", rows[0].PrincipalPayment)
	assertMoney(t, "0.01", rows[len(rows)-1].RemainingPrincipal)
}

func TestEqualPrincipal_EmptyPeriods(t *testing.T) {
	terms := testTerms()
	terms.TermMonths = 0

	rows, err := NewEqualPrincipalAmortizer(domain.Cents).Calculate(terms, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
