// Package filter narrows a job list down to what the dashboard should show.
package filter

import (
	"math"
	"sort"
	"strings"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// Criteria holds the dashboard filter selections. Zero values disable a filter.
type Criteria struct {
	Locations []string
	Companies []string
	SalaryMin *float64
	SalaryMax *float64
	Title     string
	// TopPay keeps only companies on this list when non-nil.
	TopPay utils.TopPayingSet
}

// Active reports whether any filter is set
func (c Criteria) Active() bool {
	return len(c.Locations) > 0 || len(c.Companies) > 0 ||
		c.SalaryMin != nil || c.SalaryMax != nil ||
		c.Title != "" || c.TopPay != nil
}

// Apply returns the records matching every active filter, in input order.
// The salary range is inclusive and only checked for records with a salary.
func Apply(records []models.JobRecord, c Criteria) []models.JobRecord {
	locations := toSet(c.Locations)
	companies := toSet(c.Companies)
	title := strings.ToLower(c.Title)

	out := make([]models.JobRecord, 0, len(records))
	for _, job := range records {
		if len(locations) > 0 {
			if _, ok := locations[job.Location]; !ok {
				continue
			}
		}

		if len(companies) > 0 {
			if _, ok := companies[utils.CleanCompanyName(job.Company)]; !ok {
				continue
			}
		}

		if avg, ok := utils.AverageSalary(job); ok {
			if c.SalaryMin != nil && avg < *c.SalaryMin {
				continue
			}
			if c.SalaryMax != nil && avg > *c.SalaryMax {
				continue
			}
		}

		if title != "" && !strings.Contains(strings.ToLower(job.Title), title) {
			continue
		}

		if c.TopPay != nil && !c.TopPay.Contains(job.Company) {
			continue
		}

		out = append(out, job)
	}
	return out
}

// SalaryBounds returns the widest salary range a filter can select: the lowest
// average rounded down and the highest rounded up to the nearest thousand.
// ok is false when no record has a salary.
func SalaryBounds(records []models.JobRecord) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, job := range records {
		avg, has := utils.AverageSalary(job)
		if !has {
			continue
		}
		ok = true
		lo = math.Min(lo, avg)
		hi = math.Max(hi, avg)
	}
	if !ok {
		return 0, 0, false
	}
	return math.Floor(lo/1000) * 1000, math.Ceil(hi/1000) * 1000, true
}

// Options lists the selectable locations and cleaned company names, sorted
type Options struct {
	Locations []string
	Companies []string
}

// AvailableOptions collects the distinct non-empty locations and companies
func AvailableOptions(records []models.JobRecord) Options {
	locations := make(map[string]struct{})
	companies := make(map[string]struct{})
	for _, job := range records {
		if job.Location != "" {
			locations[job.Location] = struct{}{}
		}
		if name := utils.CleanCompanyName(job.Company); name != "" {
			companies[name] = struct{}{}
		}
	}
	return Options{Locations: sortedKeys(locations), Companies: sortedKeys(companies)}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
