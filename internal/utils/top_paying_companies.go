package utils

import (
	"sort"
	"strings"
)

// defaultTopPayingCompanies is the fallback list of top paying tech employers
// according to the levels.fyi leaderboards.
var defaultTopPayingCompanies = []string{
	"Netflix", "Google", "Meta", "Apple", "Microsoft", "Amazon",
	"Uber", "Lyft", "Airbnb", "Stripe", "Coinbase", "Robinhood",
	"Snap", "Twitter", "LinkedIn", "Square", "Block", "Pinterest",
	"Dropbox", "Salesforce", "Adobe", "Oracle", "Intel", "Nvidia",
	"AMD", "Palantir", "Databricks", "Snowflake", "ByteDance",
	"Instacart", "DoorDash", "OpenAI",
}

// DefaultTopPayingCompanies returns a copy of the built-in top paying company list
func DefaultTopPayingCompanies() []string {
	out := make([]string, len(defaultTopPayingCompanies))
	copy(out, defaultTopPayingCompanies)
	return out
}

// NormalizeCompanyName normalizes company names for comparison
func NormalizeCompanyName(name string) string {
	// Convert to lowercase
	normalized := strings.ToLower(strings.TrimSpace(name))

	// Special case for Facebook/Meta
	if normalized == "facebook" {
		return "meta"
	}

	// Remove common suffixes and punctuation
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", "")
	for _, suffix := range []string{"inc", "corp", "technologies", "technology", "llc", "ltd"} {
		normalized = strings.TrimSuffix(normalized, suffix)
	}

	return normalized
}

// TopPayingSet builds a lookup set of normalized company names
type TopPayingSet map[string]struct{}

// NewTopPayingSet normalizes every name in companies into a lookup set
func NewTopPayingSet(companies []string) TopPayingSet {
	set := make(TopPayingSet, len(companies))
	for _, c := range companies {
		if n := NormalizeCompanyName(c); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Contains reports whether company is on the list. Ratings are cleaned first.
func (s TopPayingSet) Contains(company string) bool {
	_, ok := s[NormalizeCompanyName(CleanCompanyName(company))]
	return ok
}

// Names returns the normalized names in sorted order
func (s TopPayingSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
