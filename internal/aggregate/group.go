// Package aggregate turns job records into chart-ready summaries.
//
// Every function here is pure: it reads the records it is given, never
// modifies them, and returns freshly allocated results.
package aggregate

import (
	"math"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// KeyFunc extracts the grouping key of a record. Records for which ok is
// false are skipped entirely.
type KeyFunc func(job models.JobRecord) (key string, ok bool)

// Groups holds one accumulator per distinct key, in first-seen order
type Groups[A any] struct {
	keys []string
	accs map[string]A
}

// Fold groups records by key and reduces each group into an accumulator.
// newAcc is called once per new key.
func Fold[A any](records []models.JobRecord, key KeyFunc, newAcc func() A, reduce func(A, models.JobRecord) A) *Groups[A] {
	g := &Groups[A]{accs: make(map[string]A)}
	for _, job := range records {
		k, ok := key(job)
		if !ok {
			continue
		}
		acc, seen := g.accs[k]
		if !seen {
			acc = newAcc()
			g.keys = append(g.keys, k)
		}
		g.accs[k] = reduce(acc, job)
	}
	return g
}

// Len returns the number of distinct keys
func (g *Groups[A]) Len() int { return len(g.keys) }

// Keys returns the keys in first-seen order
func (g *Groups[A]) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the accumulator of a key
func (g *Groups[A]) Get(key string) (A, bool) {
	acc, ok := g.accs[key]
	return acc, ok
}

// Each calls fn for every group in first-seen order
func (g *Groups[A]) Each(fn func(key string, acc A)) {
	for _, k := range g.keys {
		fn(k, g.accs[k])
	}
}

// SalaryStats counts records and sums the average salary of those that have one
type SalaryStats struct {
	Count    int
	Salaried int
	Sum      float64
}

// AddSalary is the reducer shared by every count-and-average aggregation
func AddSalary(s SalaryStats, job models.JobRecord) SalaryStats {
	s.Count++
	if avg, ok := utils.AverageSalary(job); ok {
		s.Salaried++
		s.Sum += avg
	}
	return s
}

// Mean returns the average salary over salaried records
func (s SalaryStats) Mean() (float64, bool) {
	if s.Salaried == 0 {
		return 0, false
	}
	return s.Sum / float64(s.Salaried), true
}

// Summary converts the stats into a GroupSummary with the mean rounded to
// the nearest integer. AvgSalary stays nil for groups without salaries.
func (s SalaryStats) Summary(key string) models.GroupSummary {
	out := models.GroupSummary{Key: key, Count: s.Count}
	if mean, ok := s.Mean(); ok {
		rounded := math.Round(mean)
		out.AvgSalary = &rounded
	}
	return out
}

// Summarize folds records with AddSalary and returns one summary per key
// in first-seen order
func Summarize(records []models.JobRecord, key KeyFunc) []models.GroupSummary {
	groups := Fold(records, key, func() SalaryStats { return SalaryStats{} }, AddSalary)
	out := make([]models.GroupSummary, 0, groups.Len())
	groups.Each(func(k string, s SalaryStats) {
		out = append(out, s.Summary(k))
	})
	return out
}

// LocationKey groups by raw location and skips empty ones
func LocationKey(job models.JobRecord) (string, bool) {
	return job.Location, job.Location != ""
}

// CompanyKey groups by cleaned company name and skips empty ones
func CompanyKey(job models.JobRecord) (string, bool) {
	if job.Company == "" {
		return "", false
	}
	return utils.CleanCompanyName(job.Company), true
}

// TitleKey groups by simplified title truncated to maxLen
func TitleKey(maxLen int) KeyFunc {
	return func(job models.JobRecord) (string, bool) {
		if job.Title == "" {
			return "", false
		}
		return utils.SimplifyTitle(job.Title, maxLen), true
	}
}

// WithSalary wraps key so that records without a salary are skipped
func WithSalary(key KeyFunc) KeyFunc {
	return func(job models.JobRecord) (string, bool) {
		if job.Salary == nil {
			return "", false
		}
		return key(job)
	}
}

// ByLocation counts postings per location, sorted by count
func ByLocation(records []models.JobRecord) []models.GroupSummary {
	return TopN(Summarize(records, LocationKey), MetricCount, Unbounded)
}

// ByCompany returns the n companies with the most postings
func ByCompany(records []models.JobRecord, n int) []models.GroupSummary {
	return TopN(Summarize(records, CompanyKey), MetricCount, n)
}

// ByTitle returns the n simplified titles with the highest average salary.
// Records missing a title or a salary are ignored.
func ByTitle(records []models.JobRecord, n, maxLen int) []models.GroupSummary {
	return TopN(Summarize(records, WithSalary(TitleKey(maxLen))), MetricAvgSalary, n)
}
