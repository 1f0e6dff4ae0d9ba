// Package dashboard runs every aggregation over one filtered job list.
package dashboard

import (
	"github.com/ttv-voidgg/datascience-dashboard/internal/aggregate"
	"github.com/ttv-voidgg/datascience-dashboard/internal/config"
	"github.com/ttv-voidgg/datascience-dashboard/internal/filter"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

// Settings are the parameters of one dashboard pass
type Settings struct {
	Bands          []models.SalaryBand
	HeatBands      []models.SalaryBand
	OtherThreshold int
	TopCompanies   int
	TopTitles      int
	TitleMaxLen    int
	AverageMode    aggregate.AverageMode
	Filter         filter.Criteria
}

// SettingsFromConfig builds settings from a loaded configuration. Filters are
// left empty for the caller to fill in.
func SettingsFromConfig(cfg *config.AppConfig) (Settings, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Bands:          cfg.Aggregation.Bands,
		HeatBands:      cfg.Aggregation.HeatBands,
		OtherThreshold: cfg.Aggregation.OtherThreshold,
		TopCompanies:   cfg.Aggregation.TopCompanies,
		TopTitles:      cfg.Aggregation.TopTitles,
		TitleMaxLen:    cfg.Aggregation.TitleMaxLen,
		AverageMode:    mode,
	}, nil
}

// Dashboard holds every summary of one filtered job list
type Dashboard struct {
	TotalRecords       int                     `json:"totalRecords"`
	Jobs               []models.JobRecord      `json:"jobs"`
	Overview           models.Overview         `json:"overview"`
	Locations          []models.GroupSummary   `json:"locations"`
	LocationHeat       []models.HeatCell       `json:"locationHeat"`
	LocationSalaries   []models.LocationSalary `json:"locationSalaries"`
	LocationGrid       models.Grid             `json:"locationGrid"`
	SalaryDistribution []models.BandCount      `json:"salaryDistribution"`
	SalaryByLocation   models.CrossTab         `json:"salaryByLocation"`
	Companies          []models.GroupSummary   `json:"companies"`
	Titles             []models.GroupSummary   `json:"titles"`
}

// Filtered reports whether the filters removed any postings
func (d *Dashboard) Filtered() bool {
	return len(d.Jobs) != d.TotalRecords
}

// Build filters records and computes every summary from the result
func Build(records []models.JobRecord, s Settings) *Dashboard {
	jobs := filter.Apply(records, s.Filter)

	return &Dashboard{
		TotalRecords:       len(records),
		Jobs:               jobs,
		Overview:           aggregate.Overview(jobs, s.AverageMode),
		Locations:          aggregate.ByLocation(jobs),
		LocationHeat:       aggregate.LocationHeat(jobs, aggregate.MinHeatIntensity),
		LocationSalaries:   aggregate.SalaryByLocation(jobs),
		LocationGrid:       aggregate.LocationGrid(jobs, s.HeatBands),
		SalaryDistribution: aggregate.SalaryBuckets(jobs, s.Bands),
		SalaryByLocation:   aggregate.CrossTabulate(jobs, s.Bands, s.OtherThreshold),
		Companies:          aggregate.ByCompany(jobs, s.TopCompanies),
		Titles:             aggregate.ByTitle(jobs, s.TopTitles, s.TitleMaxLen),
	}
}

// DefaultSettings mirrors config.Default without reading any files
func DefaultSettings() Settings {
	s, _ := SettingsFromConfig(config.Default())
	return s
}
