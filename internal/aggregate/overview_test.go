package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

func TestOverview_Empty(t *testing.T) {
	t.Parallel()

	for _, mode := range []AverageMode{AverageOverSalaried, AverageOverAll} {
		got := Overview(nil, mode)
		assert.Equal(t, models.Overview{}, got, mode.String())
	}
}

func TestOverview_AverageModes(t *testing.T) {
	t.Parallel()

	records := []models.JobRecord{
		job("Dev", "A", "Austin", 80000, 100000),
		job("Dev", "A", "Austin", 60000, 80000),
		job("Dev", "A", "Boston"),
		job("Dev", "A", "Denver"),
	}

	salaried := Overview(records, AverageOverSalaried)
	require.NotNil(t, salaried.AverageSalary)
	assert.InDelta(t, 80000, *salaried.AverageSalary, 0.001)
	assert.Equal(t, 4, salaried.TotalJobs)
	assert.Equal(t, 3, salaried.UniqueLocations)

	all := Overview(records, AverageOverAll)
	require.NotNil(t, all.AverageSalary)
	assert.InDelta(t, 40000, *all.AverageSalary, 0.001)
}

func TestOverview_NoSalaries(t *testing.T) {
	t.Parallel()

	got := Overview([]models.JobRecord{job("Dev", "A", "Austin")}, AverageOverSalaried)

	assert.Equal(t, 1, got.TotalJobs)
	assert.Nil(t, got.AverageSalary)
}

func TestOverview_DistinctLocationsExactValues(t *testing.T) {
	t.Parallel()

	records := []models.JobRecord{
		{Title: "a", Location: "Austin", HasLocation: true},
		{Title: "b", Location: "", HasLocation: true},
		{Title: "c", Location: "", HasLocation: true},
		{Title: "d"},
		{Title: "e"},
		{Title: "f", Location: "austin", HasLocation: true},
	}

	got := Overview(records, AverageOverSalaried)

	assert.Equal(t, 4, got.UniqueLocations)
}

func TestParseAverageMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseAverageMode("ALL")
	require.NoError(t, err)
	assert.Equal(t, AverageOverAll, mode)

	mode, err = ParseAverageMode("")
	require.NoError(t, err)
	assert.Equal(t, AverageOverSalaried, mode)

	_, err = ParseAverageMode("median")
	require.ErrorIs(t, err, ErrUnknownAverageMode)
}
