package aggregate

import (
	"math"
	"sort"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// MinHeatIntensity keeps the faintest heat map cell visible
const MinHeatIntensity = 0.2

// LocationHeat counts postings per location and scales each count against
// the busiest location, never going below minIntensity
func LocationHeat(records []models.JobRecord, minIntensity float64) []models.HeatCell {
	groups := ByLocation(records)
	out := make([]models.HeatCell, len(groups))
	if len(groups) == 0 {
		return out
	}

	maxCount := groups[0].Count
	for i, g := range groups {
		out[i] = models.HeatCell{
			Location:  g.Key,
			Count:     g.Count,
			Intensity: math.Max(minIntensity, float64(g.Count)/float64(maxCount)),
		}
	}
	return out
}

// LocationGrid counts postings with a location and salary per location and
// band. Locations are sorted alphabetically and nothing is folded.
func LocationGrid(records []models.JobRecord, bands []models.SalaryBand) models.Grid {
	locations := make([]string, 0)
	index := make(map[string]int)
	for _, job := range records {
		if job.Location == "" {
			continue
		}
		if _, ok := index[job.Location]; !ok {
			index[job.Location] = 0
			locations = append(locations, job.Location)
		}
	}
	sort.Strings(locations)
	for i, loc := range locations {
		index[loc] = i
	}

	grid := models.Grid{
		Locations: locations,
		Bands:     BandLabels(bands),
		Counts:    make([][]int, len(locations)),
	}
	for i := range grid.Counts {
		grid.Counts[i] = make([]int, len(bands))
	}

	for _, job := range records {
		if job.Location == "" {
			continue
		}
		avg, ok := utils.AverageSalary(job)
		if !ok {
			continue
		}
		b := BandIndex(bands, avg)
		if b < 0 {
			continue
		}
		row := index[job.Location]
		grid.Counts[row][b]++
		grid.MaxCount = max(grid.MaxCount, grid.Counts[row][b])
	}

	return grid
}

// SalaryByLocation averages salaries per location, highest first. Position
// places each average between the lowest (0) and highest (1) location.
func SalaryByLocation(records []models.JobRecord) []models.LocationSalary {
	groups := Fold(records, WithSalary(LocationKey), func() SalaryStats { return SalaryStats{} }, AddSalary)

	out := make([]models.LocationSalary, 0, groups.Len())
	groups.Each(func(loc string, s SalaryStats) {
		mean, _ := s.Mean()
		out = append(out, models.LocationSalary{
			Location:  loc,
			AvgSalary: math.Round(mean),
			Count:     s.Salaried,
		})
	})
	if len(out) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgSalary > out[j].AvgSalary })

	hi, lo := out[0].AvgSalary, out[len(out)-1].AvgSalary
	if spread := hi - lo; spread > 0 {
		for i := range out {
			out[i].Position = (out[i].AvgSalary - lo) / spread
		}
	}
	return out
}
