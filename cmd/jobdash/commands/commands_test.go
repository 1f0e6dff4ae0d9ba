package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttv-voidgg/datascience-dashboard/internal/config"
	"github.com/ttv-voidgg/datascience-dashboard/internal/export"
	"github.com/ttv-voidgg/datascience-dashboard/internal/listing"
)

const sampleJobs = `[
  {"title": "Senior Data Engineer", "company": "Acme4.5", "location": "Austin", "salary": {"min": 80000, "max": 100000}},
  {"title": "Data Analyst", "company": "Globex", "location": "Boston", "salary": {"min": 60000, "max": 70000}},
  {"title": "ML Engineer", "company": "Google", "location": "Austin", "salary": {"min": 150000, "max": 190000}},
  {"title": "Data Scientist", "company": "Initech", "location": "Denver"}
]`

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJobs), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--nobanner"))
	err := root.Execute()
	return out.String(), err
}

func TestCriteria(t *testing.T) {
	t.Parallel()

	opts := &GlobalOptions{}
	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&opts.MinSalary, flagMinSalary, 0, "")
	cmd.Flags().Float64Var(&opts.MaxSalary, flagMaxSalary, 0, "")
	cmd.Flags().StringArrayVar(&opts.Locations, "location", nil, "")
	cmd.Flags().BoolVar(&opts.TopPay, "top-pay", false, "")
	require.NoError(t, cmd.ParseFlags([]string{"--min-salary", "0", "--location", "Austin", "--location", "Boston", "--top-pay"}))

	c := opts.criteria(cmd, config.Default())

	require.NotNil(t, c.SalaryMin)
	assert.InDelta(t, 0, *c.SalaryMin, 0)
	assert.Nil(t, c.SalaryMax)
	assert.Equal(t, []string{"Austin", "Boston"}, c.Locations)
	assert.True(t, c.TopPay.Contains("Google"))
	assert.True(t, c.Active())
}

func TestCriteria_NoFlags(t *testing.T) {
	t.Parallel()

	opts := &GlobalOptions{}
	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&opts.MinSalary, flagMinSalary, 0, "")
	cmd.Flags().Float64Var(&opts.MaxSalary, flagMaxSalary, 0, "")
	require.NoError(t, cmd.ParseFlags(nil))

	assert.False(t, opts.criteria(cmd, config.Default()).Active())
}

func TestOverviewCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "overview", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Total Jobs")
	assert.Contains(t, out, "Jobs by Location")
	assert.Contains(t, out, "Salary Distribution")
	assert.NotContains(t, out, "filtered")
}

func TestOverviewCommand_Filtered(t *testing.T) {
	t.Parallel()

	out, err := run(t, "overview", writeSample(t), "--location", "Austin")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 2 of 4 jobs (filtered)")
}

func TestViewCommands(t *testing.T) {
	t.Parallel()

	path := writeSample(t)
	cases := map[string]string{
		"location":  "Average Salary by Location",
		"salary":    "Salary Ranges by Location",
		"companies": "Top Companies",
	}
	for name, want := range cases {
		out, err := run(t, name, path)
		require.NoError(t, err, name)
		assert.Contains(t, out, want, name)
	}
}

func TestJobsCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "jobs", writeSample(t), "--sort", "company", "--desc")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPANY ↓")
	assert.Contains(t, out, "4 JOBS")
	assert.Contains(t, out, "Acme")
	assert.NotContains(t, out, "Acme4.5")
}

func TestJobsCommand_UnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := run(t, "jobs", writeSample(t), "--sort", "rating")
	require.ErrorIs(t, err, listing.ErrUnknownColumn)
}

func TestFiltersCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "filters", writeSample(t), "--location", "Austin")
	require.NoError(t, err)
	assert.Contains(t, out, "Denver")
	assert.Contains(t, out, "$65,000 - $170,000")
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "summary.json")

	out, err := run(t, "export", writeSample(t), "-o", target, "--top-pay")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 jobs")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalRecords": 4`)

	_, err = run(t, "export", writeSample(t), "-o", filepath.Join(dir, "summary.csv"))
	require.ErrorIs(t, err, export.ErrUnknownFormat)

	_, err = run(t, "export", writeSample(t))
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestReportCommand(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "report.html")
	_, err := run(t, "report", writeSample(t), "-o", target, "--title-text", "Data Jobs")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Data Jobs</title>")
}

func TestMissingInput(t *testing.T) {
	t.Parallel()

	_, err := run(t, "overview", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBadAverageMode(t *testing.T) {
	t.Parallel()

	_, err := run(t, "overview", writeSample(t), "--average-mode", "median")
	require.Error(t, err)
}

func TestExamplesAndVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "jobdash overview jobs.json")

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "jobdash dev\n", out)
}

func TestTopPayingCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "top-paying")
	require.NoError(t, err)
	assert.Contains(t, out, "Top paying companies")
	assert.Contains(t, out, "google")
}
