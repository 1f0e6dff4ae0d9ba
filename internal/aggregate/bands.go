package aggregate

import (
	"math"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// DefaultOtherThreshold is the per-band count below which a location is
// folded into Other
const DefaultOtherThreshold = 10

// DefaultBands returns the salary distribution bands
func DefaultBands() []models.SalaryBand {
	return []models.SalaryBand{
		{Label: "0-50K", Min: 0, Max: 50000},
		{Label: "50K-70K", Min: 50000, Max: 70000},
		{Label: "70K-90K", Min: 70000, Max: 90000},
		{Label: "90K-110K", Min: 90000, Max: 110000},
		{Label: "110K-130K", Min: 110000, Max: 130000},
		{Label: "130K+", Min: 130000, Max: math.Inf(1)},
	}
}

// HeatBands returns the coarser bands used by the location grid
func HeatBands() []models.SalaryBand {
	return []models.SalaryBand{
		{Label: "<60K", Min: 0, Max: 60000},
		{Label: "60-80K", Min: 60000, Max: 80000},
		{Label: "80-100K", Min: 80000, Max: 100000},
		{Label: ">100K", Min: 100000, Max: math.Inf(1)},
	}
}

// BandIndex returns the index of the first band containing v, or -1
func BandIndex(bands []models.SalaryBand, v float64) int {
	for i, b := range bands {
		if b.Contains(v) {
			return i
		}
	}
	return -1
}

// BandLabels returns the labels of bands in order
func BandLabels(bands []models.SalaryBand) []string {
	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.Label
	}
	return labels
}

// SalaryBuckets counts salaried postings per band, ignoring location.
// Every band is listed, zero counts included, unless no posting has a salary.
func SalaryBuckets(records []models.JobRecord, bands []models.SalaryBand) []models.BandCount {
	counts := make([]int, len(bands))
	salaried := 0
	for _, job := range records {
		avg, ok := utils.AverageSalary(job)
		if !ok {
			continue
		}
		salaried++
		if i := BandIndex(bands, avg); i >= 0 {
			counts[i]++
		}
	}

	if salaried == 0 {
		return []models.BandCount{}
	}

	out := make([]models.BandCount, len(bands))
	for i, b := range bands {
		out[i] = models.BandCount{Range: b.Label, Count: counts[i]}
	}
	return out
}

// CrossTabulate counts postings per (band, location) for records having both
// a location and a salary. Within each band, locations counted fewer than
// threshold times are summed into Other. Folding is decided per band.
func CrossTabulate(records []models.JobRecord, bands []models.SalaryBand, threshold int) models.CrossTab {
	inBand := make([][]models.JobRecord, len(bands))
	for _, job := range records {
		if job.Location == "" {
			continue
		}
		avg, ok := utils.AverageSalary(job)
		if !ok {
			continue
		}
		if i := BandIndex(bands, avg); i >= 0 {
			inBand[i] = append(inBand[i], job)
		}
	}

	perBand := make([]*Groups[int], len(bands))
	for i := range bands {
		perBand[i] = Fold(inBand[i], LocationKey, func() int { return 0 }, countRecord)
	}

	total := 0
	for _, g := range perBand {
		total += g.Len()
	}
	if total == 0 {
		return models.CrossTab{Rows: []models.CrossTabRow{}, Locations: []string{}}
	}

	tab := models.CrossTab{
		Rows:      make([]models.CrossTabRow, len(bands)),
		Locations: []string{},
	}
	seen := make(map[string]bool)

	for i, b := range bands {
		row := models.CrossTabRow{Range: b.Label, Cells: []models.LocationCount{}}
		perBand[i].Each(func(loc string, n int) {
			if n >= threshold {
				row.Cells = append(row.Cells, models.LocationCount{Location: loc, Count: n})
				if !seen[loc] {
					seen[loc] = true
					tab.Locations = append(tab.Locations, loc)
				}
				tab.MaxCount = max(tab.MaxCount, n)
				return
			}
			row.Other += n
			row.Folded = append(row.Folded, models.LocationCount{Location: loc, Count: n})
		})
		tab.MaxCount = max(tab.MaxCount, row.Other)
		tab.Rows[i] = row
	}

	return tab
}

func countRecord(n int, _ models.JobRecord) int { return n + 1 }
