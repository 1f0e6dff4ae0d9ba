// Package report renders a dashboard as a self-contained HTML page of charts.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

const (
	chartWidth    = "1100px"
	chartHeight   = "500px"
	tallHeight    = "700px"
	xAxisRotate   = 40
	stackName     = "jobs"
	otherSeries   = "Other"
	primaryColor  = "#3498db"
	salaryColor   = "#2ecc71"
	otherColor    = "#95a5a6"
	maxLocations  = 40
	titleFontSize = 16
)

var heatPalette = []string{"#ebf5fb", "#aed6f1", "#5dade2", "#2e86c1", "#1b4f72"}

// Render writes every dashboard chart to w as one HTML page
func Render(w io.Writer, d *dashboard.Dashboard, title string) error {
	page := components.NewPage()
	page.PageTitle = title

	page.AddCharts(
		overviewChart(d),
		locationChart(d.Locations),
		salaryDistributionChart(d.SalaryDistribution),
		crossTabChart(d.SalaryByLocation),
		companyChart(d.Companies),
		titleChart(d.Titles),
		gridChart(d.LocationGrid),
		locationSalaryChart(d.LocationSalaries),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func baseOpts(title, subtitle, height string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: height}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			Subtitle:   subtitle,
			TitleStyle: &opts.TextStyle{FontSize: titleFontSize},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	}
}

func overviewChart(d *dashboard.Dashboard) *charts.Bar {
	ov := d.Overview
	subtitle := fmt.Sprintf("Total jobs: %d   Average salary: %s   Locations: %d",
		ov.TotalJobs, utils.FormatAverage(ov.AverageSalary), ov.UniqueLocations)
	if d.Filtered() {
		subtitle += fmt.Sprintf("   (showing %d of %d)", ov.TotalJobs, d.TotalRecords)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: "80px"}),
		charts.WithTitleOpts(opts.Title{Title: "Job Market Overview", Subtitle: subtitle}),
	)
	return bar
}

func locationChart(groups []models.GroupSummary) *charts.Bar {
	if len(groups) > maxLocations {
		groups = groups[:maxLocations]
	}
	labels := make([]string, len(groups))
	data := make([]opts.BarData, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
		data[i] = opts.BarData{Name: g.Key, Value: g.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Jobs by Location", "Number of postings per location", chartHeight),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Jobs"}),
	)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Jobs", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: primaryColor}))
	return bar
}

func salaryDistributionChart(buckets []models.BandCount) *charts.Bar {
	labels := make([]string, len(buckets))
	data := make([]opts.BarData, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Range
		data[i] = opts.BarData{Name: b.Range, Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Salary Distribution", "Postings per average salary band", chartHeight),
		charts.WithYAxisOpts(opts.YAxis{Name: "Jobs"}),
	)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Jobs", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: salaryColor}))
	return bar
}

// crossTabChart stacks one series per surviving location plus Other; each
// cell's opacity is its intensity against the largest cell
func crossTabChart(tab models.CrossTab) *charts.Bar {
	labels := make([]string, len(tab.Rows))
	for i, r := range tab.Rows {
		labels[i] = r.Range
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Salary Bands by Location",
		fmt.Sprintf("Locations with fewer than the threshold in a band are grouped as %s", otherSeries), tallHeight),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "8%"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Jobs"}),
	)...)
	bar.SetXAxis(labels)

	for _, loc := range tab.Locations {
		data := make([]opts.BarData, len(tab.Rows))
		for i, r := range tab.Rows {
			data[i] = cellData(tab, cellCount(r, loc))
		}
		bar.AddSeries(loc, data, charts.WithBarChartOpts(opts.BarChart{Stack: stackName}))
	}

	other := make([]opts.BarData, len(tab.Rows))
	hasOther := false
	for i, r := range tab.Rows {
		other[i] = cellData(tab, r.Other)
		hasOther = hasOther || r.Other > 0
	}
	if hasOther {
		bar.AddSeries(otherSeries, other,
			charts.WithBarChartOpts(opts.BarChart{Stack: stackName}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: otherColor}),
		)
	}
	return bar
}

func cellCount(r models.CrossTabRow, loc string) int {
	for _, c := range r.Cells {
		if c.Location == loc {
			return c.Count
		}
	}
	return 0
}

func cellData(tab models.CrossTab, count int) opts.BarData {
	return opts.BarData{
		Value:     count,
		ItemStyle: &opts.ItemStyle{Opacity: opts.Float(float32(tab.Intensity(count)))},
	}
}

func companyChart(groups []models.GroupSummary) *charts.Bar {
	labels := make([]string, len(groups))
	data := make([]opts.BarData, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
		data[i] = opts.BarData{Name: "Avg " + utils.FormatAverage(g.AvgSalary), Value: g.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Top Companies", "By number of postings", chartHeight),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Jobs"}),
	)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Jobs", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: primaryColor}))
	return bar
}

func titleChart(groups []models.GroupSummary) *charts.Bar {
	labels := make([]string, len(groups))
	data := make([]opts.BarData, len(groups))
	for i, g := range groups {
		labels[i] = g.Key
		data[i] = opts.BarData{Name: utils.FormatAverage(g.AvgSalary), Value: g.AvgOrZero()}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Top Paying Job Titles", "Average salary of simplified titles", chartHeight),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Salary"}),
	)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Avg Salary", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: salaryColor}))
	bar.XYReversal()
	return bar
}

func gridChart(g models.Grid) *charts.HeatMap {
	data := make([]opts.HeatMapData, 0, len(g.Locations)*len(g.Bands))
	for i := range g.Locations {
		for j := range g.Bands {
			data = append(data, opts.HeatMapData{Value: []any{j, i, g.Counts[i][j]}})
		}
	}
	maxVal := max(g.MaxCount, 1)

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: tallHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Location vs Salary Range", Subtitle: "Postings per location and salary band"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: g.Bands, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: g.Locations, SplitArea: &opts.SplitArea{Show: opts.Bool(true)}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true), Min: 0, Max: float32(maxVal),
			InRange: &opts.VisualMapInRange{Color: heatPalette},
			Orient:  "horizontal", Left: "center", Bottom: "2%",
		}),
	)
	hm.AddSeries("Jobs", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "inside"}))
	return hm
}

func locationSalaryChart(rows []models.LocationSalary) *charts.Bar {
	if len(rows) > maxLocations {
		rows = rows[:maxLocations]
	}
	labels := make([]string, len(rows))
	data := make([]opts.BarData, len(rows))
	for i, r := range rows {
		labels[i] = r.Location
		data[i] = opts.BarData{
			Value:     r.AvgSalary,
			ItemStyle: &opts.ItemStyle{Color: salaryColor, Opacity: opts.Float(float32(0.3 + 0.7*r.Position))},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts("Average Salary by Location", "Darker bars pay more", chartHeight),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Avg Salary"}),
	)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Avg Salary", data)
	return bar
}
