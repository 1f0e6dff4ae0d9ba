package ui

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pterm/pterm"

	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/listing"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

const (
	maxChartBars   = 25
	labelWidth     = 24
	companyColumns = 28
)

// Overview renders the three header metrics side by side
func Overview(d *dashboard.Dashboard) (string, error) {
	ov := d.Overview

	total := fmt.Sprintf("%d", ov.TotalJobs)
	if d.Filtered() {
		total = fmt.Sprintf("%d of %d", ov.TotalJobs, d.TotalRecords)
	}

	panels := pterm.Panels{{
		{Data: pterm.DefaultBox.WithTitle("Total Jobs").Sprint(pterm.Bold.Sprint(total))},
		{Data: pterm.DefaultBox.WithTitle("Average Salary").Sprint(ColorizeSalary(ov.AverageSalary))},
		{Data: pterm.DefaultBox.WithTitle("Locations").Sprint(pterm.Bold.Sprint(ov.UniqueLocations))},
	}}

	return pterm.DefaultPanel.WithPanels(panels).WithPadding(2).Srender()
}

// Section renders a section heading
func Section(title string) string {
	return pterm.DefaultSection.Sprint(title)
}

// GroupBars renders a horizontal bar chart of group counts
func GroupBars(groups []models.GroupSummary) (string, error) {
	if len(groups) == 0 {
		return emptyNotice(), nil
	}
	bars := make(pterm.Bars, 0, min(len(groups), maxChartBars))
	for _, g := range groups[:min(len(groups), maxChartBars)] {
		bars = append(bars, pterm.Bar{Label: utils.TruncateString(g.Key, labelWidth), Value: g.Count})
	}
	out, err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Srender()
	if err != nil {
		return "", err
	}
	if hidden := len(groups) - len(bars); hidden > 0 {
		out += pterm.Gray(fmt.Sprintf("... and %d more\n", hidden))
	}
	return out, nil
}

// BandBars renders the flat salary distribution
func BandBars(buckets []models.BandCount) (string, error) {
	if len(buckets) == 0 {
		return emptyNotice(), nil
	}
	bars := make(pterm.Bars, len(buckets))
	for i, b := range buckets {
		bars[i] = pterm.Bar{Label: b.Range, Value: b.Count}
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Srender()
}

// CrossTab renders the salary band by location table. Each cell shows the
// count and its intensity against the largest cell.
func CrossTab(tab models.CrossTab) string {
	if len(tab.Rows) == 0 {
		return emptyNotice()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := table.Row{"Range"}
	for _, loc := range tab.Locations {
		header = append(header, loc)
	}
	header = append(header, "Other")
	tw.AppendHeader(header)

	for _, r := range tab.Rows {
		counts := make(map[string]int, len(r.Cells))
		for _, c := range r.Cells {
			counts[c.Location] = c.Count
		}
		row := table.Row{r.Range}
		for _, loc := range tab.Locations {
			row = append(row, intensityCell(tab, counts[loc]))
		}
		row = append(row, intensityCell(tab, r.Other))
		tw.AppendRow(row)
	}

	return tw.Render() + "\n"
}

func intensityCell(tab models.CrossTab, count int) string {
	if count == 0 {
		return pterm.Gray("-")
	}
	return fmt.Sprintf("%d (%.0f%%)", count, tab.Intensity(count)*100)
}

// Heat renders per-location counts with a shaded bar sized by intensity
func Heat(cells []models.HeatCell) string {
	if len(cells) == 0 {
		return emptyNotice()
	}
	const width = 20

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Location", "Jobs", "Intensity"})
	for _, c := range cells {
		filled := int(c.Intensity * width)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		tw.AppendRow(table.Row{c.Location, c.Count, pterm.LightBlue(bar)})
	}
	return tw.Render() + "\n"
}

// Grid renders the location by salary band heat map
func Grid(g models.Grid) (string, error) {
	if len(g.Locations) == 0 || g.MaxCount == 0 {
		return emptyNotice(), nil
	}
	data := make([][]float32, len(g.Locations))
	for i, row := range g.Counts {
		data[i] = make([]float32, len(row))
		for j, n := range row {
			data[i][j] = float32(n)
		}
	}
	axis := pterm.HeatmapAxis{XAxis: g.Bands, YAxis: g.Locations}
	return pterm.DefaultHeatmap.WithAxisData(axis).WithData(data).WithEnableRGB().Srender()
}

// LocationSalaries renders the average salary of every location
func LocationSalaries(rows []models.LocationSalary) string {
	if len(rows) == 0 {
		return emptyNotice()
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Location", "Avg Salary", "Jobs", "Relative"})
	for _, r := range rows {
		avg := r.AvgSalary
		tw.AppendRow(table.Row{r.Location, ColorizeSalary(&avg), r.Count, fmt.Sprintf("%.0f%%", r.Position*100)})
	}
	return tw.Render() + "\n"
}

// Companies renders the top companies with their average salary
func Companies(groups []models.GroupSummary) string {
	return summaryTable("Company", groups)
}

// Titles renders the top paying simplified titles
func Titles(groups []models.GroupSummary) string {
	return summaryTable("Title", groups)
}

func summaryTable(keyHeader string, groups []models.GroupSummary) string {
	if len(groups) == 0 {
		return emptyNotice()
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", keyHeader, "Jobs", "Avg Salary"})
	for i, g := range groups {
		tw.AppendRow(table.Row{i + 1, utils.TruncateString(g.Key, companyColumns), g.Count, ColorizeSalary(g.AvgSalary)})
	}
	return tw.Render() + "\n"
}

// JobsPage renders one page of the jobs table
func JobsPage(p listing.Page, sortedBy listing.Column, desc bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, col := range listing.Columns {
		label := strings.ToUpper(string(col[:1])) + string(col[1:])
		if col == sortedBy {
			label += sortArrow(desc)
		}
		header = append(header, label)
	}
	tw.AppendHeader(header)

	for _, r := range p.Rows {
		salary := pterm.Gray(r.Salary)
		if r.AvgSalary != nil {
			salary = salaryColor(*r.AvgSalary)(r.Salary)
		}
		tw.AppendRow(table.Row{utils.TruncateString(r.Title, 40), utils.TruncateString(r.Company, companyColumns), r.Location, salary})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("Page %d of %d", p.Number, p.TotalPages), "", "", fmt.Sprintf("%d jobs", p.TotalRows)})

	return tw.Render() + "\n"
}

func sortArrow(desc bool) string {
	if desc {
		return " ↓"
	}
	return " ↑"
}

func emptyNotice() string {
	return pterm.Gray("No data to display") + "\n"
}
