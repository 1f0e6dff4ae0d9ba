package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

func TestRender(t *testing.T) {
	t.Parallel()

	records := []models.JobRecord{
		{Title: "Go Engineer", Company: "Acme 4.5", Location: "Austin", Salary: &models.Salary{Min: 90000, Max: 110000}},
		{Title: "Analyst", Company: "Globex", Location: "Boston", Salary: &models.Salary{Min: 40000, Max: 50000}},
		{Title: "Support", Company: "Initech", Location: "Denver"},
	}
	d := dashboard.Build(records, dashboard.DefaultSettings())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, "Job Dashboard"))

	html := buf.String()
	assert.Contains(t, html, "<title>Job Dashboard</title>")
	assert.Contains(t, html, "Jobs by Location")
	assert.Contains(t, html, "Salary Bands by Location")
	assert.Contains(t, html, "Top Paying Job Titles")
	assert.Contains(t, html, "Austin")
	assert.Contains(t, html, "90K-110K")
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, dashboard.Build(nil, dashboard.DefaultSettings()), "Empty"))

	assert.Contains(t, buf.String(), "Average salary: N/A")
}

func TestCrossTabChart_OtherSeriesOnlyWhenFolded(t *testing.T) {
	t.Parallel()

	tab := models.CrossTab{
		Rows:      []models.CrossTabRow{{Range: "0-50K", Cells: []models.LocationCount{{Location: "Austin", Count: 12}}}},
		Locations: []string{"Austin"},
		MaxCount:  12,
	}

	bar := crossTabChart(tab)
	assert.Len(t, bar.MultiSeries, 1)

	tab.Rows[0].Other = 3
	bar = crossTabChart(tab)
	assert.Len(t, bar.MultiSeries, 2)
}
