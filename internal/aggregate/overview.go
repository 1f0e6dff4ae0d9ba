package aggregate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// ErrUnknownAverageMode is returned when an average mode name is not recognised
var ErrUnknownAverageMode = errors.New("unknown average mode")

// AverageMode picks the divisor of the overview average salary
type AverageMode int

const (
	// AverageOverSalaried divides by the number of postings that have a salary.
	AverageOverSalaried AverageMode = iota
	// AverageOverAll divides by every posting; postings without a salary add 0.
	AverageOverAll
)

func (m AverageMode) String() string {
	switch m {
	case AverageOverSalaried:
		return "salaried"
	case AverageOverAll:
		return "all"
	default:
		return fmt.Sprintf("AverageMode(%d)", int(m))
	}
}

// ParseAverageMode converts "salaried" or "all" into an AverageMode
func ParseAverageMode(s string) (AverageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "salaried":
		return AverageOverSalaried, nil
	case "all":
		return AverageOverAll, nil
	default:
		return AverageOverSalaried, fmt.Errorf("%w: %q", ErrUnknownAverageMode, s)
	}
}

// Overview computes the dashboard header metrics. AverageSalary is nil when
// the chosen divisor is zero.
func Overview(records []models.JobRecord, mode AverageMode) models.Overview {
	out := models.Overview{TotalJobs: len(records)}

	var sum float64
	salaried := 0
	type locKey struct {
		name    string
		present bool
	}
	locations := make(map[locKey]struct{})

	for _, job := range records {
		if avg, ok := utils.AverageSalary(job); ok {
			sum += avg
			salaried++
		}
		name, present := job.LocationKey()
		locations[locKey{name, present}] = struct{}{}
	}
	out.UniqueLocations = len(locations)

	divisor := salaried
	if mode == AverageOverAll {
		divisor = len(records)
	}
	if divisor > 0 {
		avg := sum / float64(divisor)
		out.AverageSalary = &avg
	}

	return out
}
