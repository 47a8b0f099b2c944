// Package config loads and validates loan calculation requests from YAML
// input files.
package config

import (
	"fmt"
	"os"

	"github.com/krediplan/krediplan/internal/calendar"
	"github.com/krediplan/krediplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input is the complete calculation request: the loan terms plus the
// amortization style and the holiday jurisdiction.
type Input struct {
	Loan         domain.LoanTerms         `yaml:"loan" json:"loan"`
	Style        domain.AmortizationStyle `yaml:"amortization_style" json:"amortization_style"`
	Jurisdiction calendar.Jurisdiction    `yaml:"jurisdiction" json:"jurisdiction"`
}

// InputParser handles parsing of input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML file, applies
// defaults and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&input)
	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ApplyDefaults fills the fields the file may omit: the statutory BSMV
// rate, the equal-principal style and the Turkish holiday calendar.
func (ip *InputParser) ApplyDefaults(input *Input) {
	if input.Loan.BSMVRate.IsZero() {
		input.Loan.BSMVRate = domain.DefaultBSMVRate
	}
	if input.Style == "" {
		input.Style = domain.EqualPrincipal
	}
	if input.Jurisdiction == "" {
		input.Jurisdiction = calendar.Turkey
	}
}

// Validate checks the calculation request. Every error names the offending
// field and value so the caller can correct the request.
func (ip *InputParser) Validate(input *Input) error {
	loan := &input.Loan

	if !loan.Principal.GreaterThan(decimal.Zero) {
		return fmt.Errorf("principal must be positive, got %s", loan.Principal)
	}
	if loan.MonthlyInterestRate.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_interest_rate must not be negative, got %s", loan.MonthlyInterestRate)
	}
	if loan.CommissionRate.LessThan(decimal.Zero) {
		return fmt.Errorf("commission_rate must not be negative, got %s", loan.CommissionRate)
	}
	if loan.BSMVRate.LessThan(decimal.Zero) {
		return fmt.Errorf("bsmv_rate must not be negative, got %s", loan.BSMVRate)
	}
	if loan.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if !loan.PaymentFrequency.IsValid() {
		return fmt.Errorf("%w: got %q", domain.ErrInvalidFrequency, string(loan.PaymentFrequency))
	}
	if loan.TermMonths <= 0 {
		return fmt.Errorf("term_months must be positive, got %d", loan.TermMonths)
	}
	if months := loan.PaymentFrequency.Months(); loan.TermMonths%months != 0 {
		return fmt.Errorf("term_months (%d) must be an exact multiple of the payment frequency's month count (%d)",
			loan.TermMonths, months)
	}
	if input.Style != domain.EqualPrincipal && input.Style != domain.EqualInstallment {
		return fmt.Errorf("unknown amortization_style %q: must be %q or %q",
			input.Style, domain.EqualPrincipal, domain.EqualInstallment)
	}
	if loan.UseVariableAccrualDays && input.Style == domain.EqualInstallment {
		return fmt.Errorf("use_variable_accrual_days only applies to the %q style", domain.EqualPrincipal)
	}
	return nil
}
