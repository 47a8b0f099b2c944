package output

import (
	"encoding/json"

	"github.com/krediplan/krediplan/internal/domain"
)

// JSONFormatter renders the full schedule result as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a schedule result.
func (jf JSONFormatter) Format(result *domain.ScheduleResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// FormatCalendar generates JSON output for the payment-calendar view.
func (jf JSONFormatter) FormatCalendar(entries []domain.CalendarEntry) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(entries, "", "  ")
	}
	return json.Marshal(entries)
}
