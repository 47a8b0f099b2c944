package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/krediplan/krediplan/internal/domain"
)

// CSVFormatter renders schedule rows and calendar entries as CSV, one row
// per installment.
type CSVFormatter struct{}

// Format writes the amortization rows as CSV.
func (c CSVFormatter) Format(result *domain.ScheduleResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"InstallmentNumber", "PaymentDate", "AccrualDays", "PrincipalPayment",
		"InterestPayment", "BSMV", "CommissionPayment", "InstallmentAmount", "RemainingPrincipal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Rows {
		row := &result.Rows[i]
		record := []string{
			strconv.Itoa(row.InstallmentNumber),
			row.PaymentDate.Format(dateLayout),
			strconv.Itoa(row.AccrualDays),
			row.PrincipalPayment.StringFixed(2),
			row.InterestPayment.StringFixed(2),
			row.BSMV.StringFixed(2),
			row.CommissionPayment.StringFixed(2),
			row.InstallmentAmount.StringFixed(2),
			row.RemainingPrincipal.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatCalendar writes the payment-calendar export view as CSV.
func (c CSVFormatter) FormatCalendar(entries []domain.CalendarEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Installment", "PaymentDate", "FixedAccrualDays", "AccrualDays", "AccrualStart", "AccrualEnd"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Installment),
			e.PaymentDate.Format(dateLayout),
			strconv.Itoa(e.FixedAccrualDays),
			strconv.Itoa(e.AccrualDays),
			e.AccrualStart.Format(dateLayout),
			e.AccrualEnd.Format(dateLayout),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
