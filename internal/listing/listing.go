// Package listing provides the sortable, paginated jobs table.
package listing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// DefaultPageSize is the number of rows per table page
const DefaultPageSize = 10

// ErrUnknownColumn is returned for a sort column the table does not have
var ErrUnknownColumn = errors.New("unknown sort column")

// Column is a sortable jobs table column
type Column string

const (
	ColumnTitle    Column = "title"
	ColumnCompany  Column = "company"
	ColumnLocation Column = "location"
	ColumnSalary   Column = "salary"
)

// Columns lists the table columns in display order
var Columns = []Column{ColumnTitle, ColumnCompany, ColumnLocation, ColumnSalary}

// ParseColumn validates a column name. An empty name means no sorting.
func ParseColumn(s string) (Column, error) {
	if s == "" {
		return "", nil
	}
	c := Column(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Columns {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Row is one rendered table row
type Row struct {
	Title    string
	Company  string
	Location string
	Salary   string
	// AvgSalary is nil for postings without a salary.
	AvgSalary *float64
}

// Sort returns a sorted copy of records. Salary compares average salaries with
// unsalaried postings lowest. Equal rows keep their input order.
func Sort(records []models.JobRecord, col Column, desc bool) []models.JobRecord {
	out := make([]models.JobRecord, len(records))
	copy(out, records)
	if col == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], col)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b models.JobRecord, col Column) int {
	switch col {
	case ColumnTitle:
		return strings.Compare(a.Title, b.Title)
	case ColumnCompany:
		return strings.Compare(a.Company, b.Company)
	case ColumnLocation:
		return strings.Compare(a.Location, b.Location)
	case ColumnSalary:
		avgA, okA := utils.AverageSalary(a)
		avgB, okB := utils.AverageSalary(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		case avgA < avgB:
			return -1
		case avgA > avgB:
			return 1
		}
	}
	return 0
}

// Page is one page of the jobs table
type Page struct {
	Rows       []Row
	Number     int
	TotalPages int
	TotalRows  int
}

// Paginate returns the 1-based page of records, clamping the page number into
// range. An empty list yields a single empty page.
func Paginate(records []models.JobRecord, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(records)
	pages := max(1, (total+size-1)/size)
	page = min(max(page, 1), pages)

	start := min((page-1)*size, total)
	end := min(start+size, total)

	rows := make([]Row, 0, end-start)
	for _, job := range records[start:end] {
		rows = append(rows, NewRow(job))
	}
	return Page{Rows: rows, Number: page, TotalPages: pages, TotalRows: total}
}

// NewRow renders a record for display: the company is cleaned and the salary
// shown as a single figure, a range, or N/A
func NewRow(job models.JobRecord) Row {
	row := Row{
		Title:    job.Title,
		Company:  utils.CleanCompanyName(job.Company),
		Location: job.Location,
		Salary:   utils.FormatSalaryRange(job.Salary),
	}
	if avg, ok := utils.AverageSalary(job); ok {
		row.AvgSalary = &avg
	}
	return row
}
