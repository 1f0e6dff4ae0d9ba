package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

func ptr(v float64) *float64 { return &v }

var sample = []models.JobRecord{
	{Title: "Senior Go Engineer", Company: "Acme 4.5", Location: "Austin", Salary: &models.Salary{Min: 120000, Max: 140000}},
	{Title: "Data Analyst", Company: "Globex", Location: "Boston", Salary: &models.Salary{Min: 60000, Max: 70000}},
	{Title: "Frontend Developer", Company: "Acme3.1", Location: "Denver"},
	{Title: "Go Developer", Company: "Google Inc.", Location: "Austin", Salary: &models.Salary{Min: 90000, Max: 90000}},
	{Company: "Initech", Location: "Austin", Salary: &models.Salary{Min: 40000, Max: 40000}},
}

func titles(records []models.JobRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestApply_NoCriteriaKeepsEverything(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{})

	assert.Equal(t, sample, got)
	assert.False(t, Criteria{}.Active())
}

func TestApply_Location(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{Locations: []string{"Boston", "Denver"}})

	assert.Equal(t, []string{"Data Analyst", "Frontend Developer"}, titles(got))
}

func TestApply_CompanyMatchesCleanedName(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{Companies: []string{"Acme"}})

	assert.Equal(t, []string{"Senior Go Engineer", "Frontend Developer"}, titles(got))
}

func TestApply_SalaryRangeInclusiveAndSkipsUnsalaried(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{SalaryMin: ptr(65000), SalaryMax: ptr(90000)})

	assert.Equal(t, []string{"Data Analyst", "Frontend Developer", "Go Developer"}, titles(got))
}

func TestApply_TitleCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{Title: "go"})

	assert.Equal(t, []string{"Senior Go Engineer", "Go Developer"}, titles(got))
}

func TestApply_TopPay(t *testing.T) {
	t.Parallel()

	c := Criteria{TopPay: utils.NewTopPayingSet([]string{"Google"})}
	got := Apply(sample, c)

	require.Len(t, got, 1)
	assert.Equal(t, "Go Developer", got[0].Title)
	assert.True(t, c.Active())
}

func TestApply_Combined(t *testing.T) {
	t.Parallel()

	got := Apply(sample, Criteria{Locations: []string{"Austin"}, SalaryMin: ptr(100000)})

	assert.Equal(t, []string{"Senior Go Engineer"}, titles(got))
}

func TestSalaryBounds(t *testing.T) {
	t.Parallel()

	lo, hi, ok := SalaryBounds(sample)

	require.True(t, ok)
	assert.InDelta(t, 40000, lo, 0.001)
	assert.InDelta(t, 130000, hi, 0.001)

	lo, hi, ok = SalaryBounds([]models.JobRecord{{Salary: &models.Salary{Min: 45500, Max: 45700}}})
	require.True(t, ok)
	assert.InDelta(t, 45000, lo, 0.001)
	assert.InDelta(t, 46000, hi, 0.001)

	_, _, ok = SalaryBounds([]models.JobRecord{{Title: "x"}})
	assert.False(t, ok)
}

func TestAvailableOptions(t *testing.T) {
	t.Parallel()

	opts := AvailableOptions(sample)

	assert.Equal(t, []string{"Austin", "Boston", "Denver"}, opts.Locations)
	assert.Equal(t, []string{"Acme", "Globex", "Google Inc.", "Initech"}, opts.Companies)
}
