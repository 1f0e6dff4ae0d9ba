package models

// Salary represents the advertised pay range of a job posting
type Salary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// JobRecord represents one job posting read from the input file
type JobRecord struct {
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location"`
	Salary   *Salary `json:"salary,omitempty"`

	// HasLocation is set by the loader when the location key was present as a string,
	// even an empty one.
	HasLocation bool `json:"-"`
}

// LocationKey returns the location used for distinct-value counting.
// Absent and empty locations are different keys.
func (r JobRecord) LocationKey() (string, bool) {
	return r.Location, r.HasLocation || r.Location != ""
}

// SalaryBand is a half-open salary interval [Min, Max) with a display label
type SalaryBand struct {
	Label string  `yaml:"label"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Contains reports whether v falls inside the band
func (b SalaryBand) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// GroupSummary is the output unit of every grouping aggregator
type GroupSummary struct {
	Key       string   `json:"key"`
	Count     int      `json:"count"`
	AvgSalary *float64 `json:"avgSalary,omitempty"`
}

// AvgOrZero returns the average salary, or 0 when the group has none
func (g GroupSummary) AvgOrZero() float64 {
	if g.AvgSalary == nil {
		return 0
	}
	return *g.AvgSalary
}

// BandCount is the number of postings whose average salary falls in a band
type BandCount struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// LocationCount is a count of postings for a single location
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// CrossTabRow holds the per-location counts of one salary band.
// Locations under the fold threshold are summed into Other and listed in Folded.
type CrossTabRow struct {
	Range  string          `json:"range"`
	Cells  []LocationCount `json:"cells"`
	Other  int             `json:"other"`
	Folded []LocationCount `json:"folded,omitempty"`
}

// CrossTab is the salary band by location cross-tabulation
type CrossTab struct {
	Rows      []CrossTabRow `json:"rows"`
	Locations []string      `json:"locations"`
	MaxCount  int           `json:"maxCount"`
}

// Intensity scales a cell count against the largest surviving cell
func (c CrossTab) Intensity(count int) float64 {
	if c.MaxCount == 0 {
		return 0
	}
	return float64(count) / float64(c.MaxCount)
}

// HeatCell is a location count with its color intensity
type HeatCell struct {
	Location  string  `json:"location"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"`
}

// Grid counts postings per location and salary band without any folding
type Grid struct {
	Locations []string `json:"locations"`
	Bands     []string `json:"bands"`
	Counts    [][]int  `json:"counts"`
	MaxCount  int      `json:"maxCount"`
}

// LocationSalary is the average salary of a location and its position
// between the lowest and highest location averages
type LocationSalary struct {
	Location  string  `json:"location"`
	AvgSalary float64 `json:"avgSalary"`
	Count     int     `json:"count"`
	Position  float64 `json:"position"`
}

// Overview holds the dashboard header metrics
type Overview struct {
	TotalJobs       int      `json:"totalJobs"`
	AverageSalary   *float64 `json:"averageSalary,omitempty"`
	UniqueLocations int      `json:"uniqueLocations"`
}
