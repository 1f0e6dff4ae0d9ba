package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

// NotAvailable is shown wherever a salary figure cannot be computed
const NotAvailable = "N/A"

// FormatSalary formats a salary amount with a dollar sign and comma separators
func FormatSalary(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatAverage formats an optional average, returning N/A when it is missing
func FormatAverage(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return FormatSalary(*v)
}

// FormatSalaryRange renders a posting's salary the way the jobs table shows it
func FormatSalaryRange(s *models.Salary) string {
	if s == nil {
		return NotAvailable
	}
	if s.Min == s.Max {
		return FormatSalary(s.Min)
	}
	return fmt.Sprintf("%s - %s", FormatSalary(s.Min), FormatSalary(s.Max))
}

// FormatCompact renders a salary in thousands, e.g. 85000 -> "85K"
func FormatCompact(v float64) string {
	return fmt.Sprintf("%sK", humanize.Comma(int64(math.Round(v/1000))))
}

// TruncateString shortens s to maxLen runes, marking the cut with "..."
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
