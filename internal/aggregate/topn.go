package aggregate

import (
	"fmt"
	"sort"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

// Unbounded keeps every group when passed as n to TopN
const Unbounded = -1

// Metric selects what TopN ranks groups by
type Metric int

const (
	MetricCount Metric = iota
	MetricAvgSalary
)

func (m Metric) String() string {
	switch m {
	case MetricCount:
		return "count"
	case MetricAvgSalary:
		return "avgSalary"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

func (m Metric) value(g models.GroupSummary) float64 {
	if m == MetricAvgSalary {
		return g.AvgOrZero()
	}
	return float64(g.Count)
}

// TopN sorts a copy of groups by metric in descending order and keeps the
// first n. Ties keep their input order. A negative n keeps everything.
func TopN(groups []models.GroupSummary, metric Metric, n int) []models.GroupSummary {
	out := make([]models.GroupSummary, len(groups))
	copy(out, groups)

	sort.SliceStable(out, func(i, j int) bool {
		return metric.value(out[i]) > metric.value(out[j])
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
