package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
loan:
  principal: 250000.00
  monthly_interest_rate: 0.0215
  commission_rate: 0.01
  start_date: 2024-03-05
  term_months: 12
  payment_frequency: "1m"
amortization_style: equal_installment
`

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	input, err := parser.LoadFromFile(writeTempInput(t, validYAML))
	require.NoError(t, err)

	assert.True(t, input.Loan.Principal.Equal(decimal.RequireFromString("250000.00")))
	assert.True(t, input.Loan.MonthlyInterestRate.Equal(decimal.RequireFromString("0.0215")))
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), input.Loan.StartDate)
	assert.Equal(t, 12, input.Loan.TermMonths)
	assert.Equal(t, domain.Monthly, input.Loan.PaymentFrequency)
	assert.Equal(t, domain.EqualInstallment, input.Style)

	// Omitted fields pick up defaults.
	assert.True(t, input.Loan.BSMVRate.Equal(domain.DefaultBSMVRate))
	assert.Equal(t, calendar.Turkey, input.Jurisdiction)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempInput(t, "loan: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func validInput() *Input {
	input := &Input{
		Loan: domain.LoanTerms{
			Principal:           decimal.NewFromInt(100000),
			MonthlyInterestRate: decimal.NewFromFloat(0.02),
			CommissionRate:      decimal.NewFromFloat(0.01),
			StartDate:           time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			TermMonths:          12,
			PaymentFrequency:    domain.Monthly,
			BSMVRate:            domain.DefaultBSMVRate,
		},
		Style:        domain.EqualPrincipal,
		Jurisdiction: calendar.Turkey,
	}
	return input
}

func TestValidate(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr string
	}{
		{"valid", func(*Input) {}, ""},
		{"zero principal", func(in *Input) { in.Loan.Principal = decimal.Zero }, "principal must be positive"},
		{"negative rate", func(in *Input) { in.Loan.MonthlyInterestRate = decimal.NewFromFloat(-0.01) }, "monthly_interest_rate"},
		{"negative commission", func(in *Input) { in.Loan.CommissionRate = decimal.NewFromFloat(-0.01) }, "commission_rate"},
		{"missing start date", func(in *Input) { in.Loan.StartDate = time.Time{} }, "start_date is required"},
		{"zero term", func(in *Input) { in.Loan.TermMonths = 0 }, "term_months must be positive"},
		{"term not multiple of frequency", func(in *Input) {
			in.Loan.PaymentFrequency = domain.Quarterly
			in.Loan.TermMonths = 10
		}, "exact multiple"},
		{"unknown style", func(in *Input) { in.Style = "bullet" }, "unknown amortization_style"},
		{"variable days with equal installment", func(in *Input) {
			in.Loan.UseVariableAccrualDays = true
			in.Style = domain.EqualInstallment
		}, "use_variable_accrual_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := parser.Validate(input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_InvalidFrequency(t *testing.T) {
	parser := NewInputParser()
	input := validInput()
	input.Loan.PaymentFrequency = domain.Frequency("2m")

	err := parser.Validate(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidFrequency))
}
