// Package output renders schedule results for the consoles and files the
// presentation layer feeds: fixed-width tables, CSV and JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/krediplan/krediplan/internal/domain"
)

const dateLayout = "2006-01-02"

// TableFormatter renders a schedule result as a fixed-width console table.
type TableFormatter struct{}

// Format generates the full report: loan terms header, amortization rows
// and the summary block.
func (tf *TableFormatter) Format(result *domain.ScheduleResult) string {
	var sb strings.Builder

	sb.WriteString("LOAN REPAYMENT SCHEDULE\n")
	sb.WriteString(strings.Repeat("=", 112) + "\n")
	sb.WriteString(fmt.Sprintf("Principal: %s  Monthly Rate: %s  Commission: %s  BSMV: %s\n",
		result.Terms.Principal.StringFixed(2),
		result.Terms.MonthlyInterestRate.String(),
		result.Terms.CommissionRate.String(),
		result.Terms.BSMVRate.String()))
	sb.WriteString(fmt.Sprintf("Start: %s  Term: %d months  Frequency: %s  Style: %s\n",
		result.Terms.StartDate.Format(dateLayout),
		result.Terms.TermMonths,
		result.Terms.PaymentFrequency,
		result.Style))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%4s %-12s %6s %14s %14s %12s %12s %14s %16s\n",
		"#", "Date", "Days", "Principal", "Interest", "BSMV", "Commission", "Installment", "Remaining"))
	sb.WriteString(strings.Repeat("-", 112) + "\n")

	for i := range result.Rows {
		row := &result.Rows[i]
		sb.WriteString(fmt.Sprintf("%4d %-12s %6d %14s %14s %12s %12s %14s %16s\n",
			row.InstallmentNumber,
			row.PaymentDate.Format(dateLayout),
			row.AccrualDays,
			row.PrincipalPayment.StringFixed(2),
			row.InterestPayment.StringFixed(2),
			row.BSMV.StringFixed(2),
			row.CommissionPayment.StringFixed(2),
			row.InstallmentAmount.StringFixed(2),
			row.RemainingPrincipal.StringFixed(2)))
	}

	sb.WriteString(strings.Repeat("=", 112) + "\n")
	sb.WriteString("\nSUMMARY\n")
	sb.WriteString(strings.Repeat("-", 48) + "\n")
	summary := &result.Summary
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total Loan Cost", summary.TotalLoanCost.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total Interest Paid", summary.TotalInterestPaid.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total BSMV Paid", summary.TotalBSMVPaid.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total Installments Paid", summary.TotalInstallmentsPaid.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Total Commission Paid", summary.TotalCommissionPaid.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %18s\n", "Average Maturity (years)", summary.AverageMaturityYears.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-28s %17s%%\n", "All-In Rate", summary.AllInRatePercent.StringFixed(2)))

	return sb.String()
}

// FormatCalendar renders the payment-calendar export view as a table.
func (tf *TableFormatter) FormatCalendar(entries []domain.CalendarEntry) string {
	var sb strings.Builder

	sb.WriteString("PAYMENT CALENDAR\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("%4s %-12s %10s %12s %-12s %-12s\n",
		"#", "Payment", "Fixed Days", "Actual Days", "Accr. Start", "Accr. End"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%4d %-12s %10d %12d %-12s %-12s\n",
			e.Installment,
			e.PaymentDate.Format(dateLayout),
			e.FixedAccrualDays,
			e.AccrualDays,
			e.AccrualStart.Format(dateLayout),
			e.AccrualEnd.Format(dateLayout)))
	}
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	return sb.String()
}
