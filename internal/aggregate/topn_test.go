package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

func avg(v float64) *float64 { return &v }

func TestTopN_NeverExceedsN(t *testing.T) {
	t.Parallel()

	groups := []models.GroupSummary{
		{Key: "a", Count: 1}, {Key: "b", Count: 3}, {Key: "c", Count: 2},
	}

	for n := 0; n <= 5; n++ {
		got := TopN(groups, MetricCount, n)
		assert.Len(t, got, min(n, len(groups)), "n=%d", n)
	}
	assert.Len(t, TopN(groups, MetricCount, Unbounded), 3)
}

func TestTopN_StableOnTies(t *testing.T) {
	t.Parallel()

	groups := []models.GroupSummary{
		{Key: "first", Count: 2}, {Key: "big", Count: 9}, {Key: "second", Count: 2}, {Key: "third", Count: 2},
	}

	got := TopN(groups, MetricCount, Unbounded)

	assert.Equal(t, []string{"big", "first", "second", "third"}, keysOf(got))
	assert.Equal(t, "first", groups[0].Key, "input must not be reordered")
}

func TestTopN_ByAvgSalaryTreatsMissingAsZero(t *testing.T) {
	t.Parallel()

	groups := []models.GroupSummary{
		{Key: "none", Count: 5},
		{Key: "low", Count: 1, AvgSalary: avg(40000)},
		{Key: "high", Count: 1, AvgSalary: avg(140000)},
	}

	got := TopN(groups, MetricAvgSalary, 2)

	assert.Equal(t, []string{"high", "low"}, keysOf(got))
}

func TestMetric_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "count", MetricCount.String())
	assert.Equal(t, "avgSalary", MetricAvgSalary.String())
}

func keysOf(groups []models.GroupSummary) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}
