// Package money formats salary amounts for display the way the job
// board UI shows them: tögrög symbol, comma thousand separators, and a
// pay-period suffix.
package money

import (
	"strconv"

	"github.com/jonathan/jobboard/internal/db"
)

// Symbol is the currency symbol used across the UI.
const Symbol = "₮"

// Format renders an amount as a display string, e.g. 70000 -> "₮70,000".
func Format(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	s := Symbol + string(out)
	if negative {
		s = "-" + s
	}
	return s
}

// PeriodSuffix returns the display suffix for a pay period.
func PeriodSuffix(period string) string {
	switch period {
	case db.SalaryHourly:
		return "/цаг"
	case db.SalaryMonthly:
		return "/сар"
	default:
		return "/жил"
	}
}

// DisplaySalary renders a job's salary with its pay-period suffix,
// e.g. (70000, monthly) -> "₮70,000/сар".
func DisplaySalary(amount int64, period string) string {
	return Format(amount) + PeriodSuffix(period)
}
