package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

func TestLocationHeat_MinIntensity(t *testing.T) {
	t.Parallel()

	records := concat(
		repeat(10, job("Dev", "A", "Austin")),
		repeat(5, job("Dev", "A", "Boston")),
		repeat(1, job("Dev", "A", "Denver")),
	)

	got := LocationHeat(records, MinHeatIntensity)

	require.Len(t, got, 3)
	assert.Equal(t, "Austin", got[0].Location)
	assert.InDelta(t, 1.0, got[0].Intensity, 1e-9)
	assert.InDelta(t, 0.5, got[1].Intensity, 1e-9)
	assert.InDelta(t, 0.2, got[2].Intensity, 1e-9)
}

func TestLocationGrid(t *testing.T) {
	t.Parallel()

	records := []models.JobRecord{
		job("Dev", "A", "Denver", 50000, 50000),
		job("Dev", "A", "Austin", 70000, 90000),
		job("Dev", "A", "Austin", 79000, 81000),
		job("Dev", "A", "Austin", 120000, 150000),
		job("Dev", "A", "Boston"),
		job("Dev", "A", "", 90000, 90000),
	}

	grid := LocationGrid(records, HeatBands())

	assert.Equal(t, []string{"Austin", "Boston", "Denver"}, grid.Locations)
	assert.Equal(t, []string{"<60K", "60-80K", "80-100K", ">100K"}, grid.Bands)
	assert.Equal(t, [][]int{
		{0, 0, 2, 1},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	}, grid.Counts)
	assert.Equal(t, 2, grid.MaxCount)
}

func TestSalaryByLocation(t *testing.T) {
	t.Parallel()

	records := []models.JobRecord{
		job("Dev", "A", "Austin", 100000, 100000),
		job("Dev", "A", "Austin", 80000, 80000),
		job("Dev", "A", "Boston", 120000, 120000),
		job("Dev", "A", "Denver", 60000, 60000),
		job("Dev", "A", "Denver"),
		job("Dev", "A", "", 500000, 500000),
	}

	got := SalaryByLocation(records)

	require.Len(t, got, 3)
	assert.Equal(t, models.LocationSalary{Location: "Boston", AvgSalary: 120000, Count: 1, Position: 1}, got[0])
	assert.Equal(t, "Austin", got[1].Location)
	assert.Equal(t, 2, got[1].Count)
	assert.InDelta(t, 0.5, got[1].Position, 1e-9)
	assert.Equal(t, models.LocationSalary{Location: "Denver", AvgSalary: 60000, Count: 1, Position: 0}, got[2])
}

func TestSalaryByLocation_SingleLocationNoNaN(t *testing.T) {
	t.Parallel()

	got := SalaryByLocation([]models.JobRecord{job("Dev", "A", "Austin", 1, 1)})

	require.Len(t, got, 1)
	assert.InDelta(t, 0.0, got[0].Position, 1e-9)
}
