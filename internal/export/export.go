// Package export writes dashboard summaries to files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

var (
	ErrNoOutput      = errors.New("no output path given")
	ErrUnknownFormat = errors.New("unknown export format")
)

// Format is an export file format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ToFile writes d to path in the format its extension names
func ToFile(path string, d *dashboard.Dashboard) error {
	if path == "" {
		return ErrNoOutput
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = JSON(f, d)
	default:
		err = XLSX(f, d)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// JSON writes d as indented JSON
func JSON(w io.Writer, d *dashboard.Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}
	return nil
}

// Sheet names of the xlsx workbook
const (
	SheetOverview  = "Overview"
	SheetLocations = "Locations"
	SheetSalaries  = "Salary Bands"
	SheetCrossTab  = "Bands by Location"
	SheetCompanies = "Companies"
	SheetTitles    = "Titles"
	SheetJobs      = "Jobs"
)

// XLSX writes d as a workbook with one sheet per summary
func XLSX(w io.Writer, d *dashboard.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	avg := any(utils.NotAvailable)
	if d.Overview.AverageSalary != nil {
		avg = *d.Overview.AverageSalary
	}
	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetOverview, [][]any{
			{"Metric", "Value"},
			{"Total Jobs", d.Overview.TotalJobs},
			{"Average Salary", avg},
			{"Unique Locations", d.Overview.UniqueLocations},
			{"Records Loaded", d.TotalRecords},
		}},
		{SheetLocations, groupRows("Location", d.Locations)},
		{SheetSalaries, bandRows(d.SalaryDistribution)},
		{SheetCrossTab, crossTabRows(d.SalaryByLocation)},
		{SheetCompanies, groupRows("Company", d.Companies)},
		{SheetTitles, groupRows("Title", d.Titles)},
		{SheetJobs, jobRows(d.Jobs)},
	}

	for i, s := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("create sheet %s: %w", s.name, err)
			}
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func groupRows(keyHeader string, groups []models.GroupSummary) [][]any {
	rows := [][]any{{keyHeader, "Jobs", "Avg Salary"}}
	for _, g := range groups {
		var avg any = ""
		if g.AvgSalary != nil {
			avg = *g.AvgSalary
		}
		rows = append(rows, []any{g.Key, g.Count, avg})
	}
	return rows
}

func bandRows(buckets []models.BandCount) [][]any {
	rows := [][]any{{"Range", "Jobs"}}
	for _, b := range buckets {
		rows = append(rows, []any{b.Range, b.Count})
	}
	return rows
}

func crossTabRows(tab models.CrossTab) [][]any {
	header := []any{"Range"}
	for _, loc := range tab.Locations {
		header = append(header, loc)
	}
	header = append(header, "Other")
	rows := [][]any{header}

	for _, r := range tab.Rows {
		counts := make(map[string]int, len(r.Cells))
		for _, c := range r.Cells {
			counts[c.Location] = c.Count
		}
		row := []any{r.Range}
		for _, loc := range tab.Locations {
			row = append(row, counts[loc])
		}
		rows = append(rows, append(row, r.Other))
	}
	return rows
}

func jobRows(jobs []models.JobRecord) [][]any {
	rows := [][]any{{"Title", "Company", "Location", "Min Salary", "Max Salary"}}
	for _, j := range jobs {
		var lo, hi any = "", ""
		if j.Salary != nil {
			lo, hi = j.Salary.Min, j.Salary.Max
		}
		rows = append(rows, []any{j.Title, utils.CleanCompanyName(j.Company), j.Location, lo, hi})
	}
	return rows
}
