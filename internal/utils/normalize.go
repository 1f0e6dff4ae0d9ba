package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

// DefaultTitleMaxLen is the length simplified titles are truncated to
const DefaultTitleMaxLen = 20

var (
	ratingSuffix = regexp.MustCompile(`\d+\.\d+$`)
	seniority    = regexp.MustCompile(`(?i)(Senior|Jr\.|Junior|Lead)`)
	roleNames    = regexp.MustCompile(`(?i)(Developer|Engineer|Programmer)`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// CleanCompanyName removes a trailing rating such as "4.5" from a company name
// and trims the result. The strip is repeated until nothing changes, so cleaning
// an already cleaned name returns it unchanged.
func CleanCompanyName(company string) string {
	cleaned := strings.TrimSpace(company)
	for {
		next := strings.TrimSpace(ratingSuffix.ReplaceAllString(cleaned, ""))
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}

// AverageSalary returns the midpoint of a posting's salary range.
// The bool is false when the posting carries no salary.
func AverageSalary(job models.JobRecord) (float64, bool) {
	if job.Salary == nil {
		return 0, false
	}
	return (job.Salary.Min + job.Salary.Max) / 2, true
}

// SimplifyTitle drops seniority qualifiers and folds role synonyms into
// "Developer" so near-duplicate titles group together
func SimplifyTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultTitleMaxLen
	}

	simplified := seniority.ReplaceAllString(title, "")
	simplified = roleNames.ReplaceAllString(simplified, "Developer")
	simplified = strings.TrimSpace(whitespace.ReplaceAllString(simplified, " "))

	if utf8.RuneCountInString(simplified) > maxLen {
		return string([]rune(simplified)[:maxLen]) + "..."
	}
	return simplified
}
