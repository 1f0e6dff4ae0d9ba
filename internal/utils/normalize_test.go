package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

func TestCleanCompanyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Acme4.5", "Acme"},
		{"Acme 4.5", "Acme"},
		{"  Globex Corp 3.9  ", "Globex Corp"},
		{"Initech", "Initech"},
		{"Web 2.0 Labs", "Web 2.0 Labs"},
		{"Acme 4.5 3.2", "Acme"},
		{"", ""},
		{"4.5", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCompanyName(tt.in), "input %q", tt.in)
	}
}

func TestCleanCompanyName_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"Acme4.5", "Acme 4.5 3.2", "1.2.3", "Foo 1.5 ", "x 10.25\t", "Web 2.0 Labs", "  "}
	for _, in := range inputs {
		once := CleanCompanyName(in)
		assert.Equal(t, once, CleanCompanyName(once), "input %q", in)
	}
}

func TestAverageSalary(t *testing.T) {
	t.Parallel()

	avg, ok := AverageSalary(models.JobRecord{Salary: &models.Salary{Min: 80000, Max: 100000}})
	assert.True(t, ok)
	assert.InDelta(t, 90000, avg, 0.001)

	avg, ok = AverageSalary(models.JobRecord{Salary: &models.Salary{Min: 50000, Max: 50000}})
	assert.True(t, ok)
	assert.InDelta(t, 50000, avg, 0.001)

	avg, ok = AverageSalary(models.JobRecord{Salary: &models.Salary{Max: 60000}})
	assert.True(t, ok)
	assert.InDelta(t, 30000, avg, 0.001)

	_, ok = AverageSalary(models.JobRecord{Title: "Dev"})
	assert.False(t, ok)
}

func TestSimplifyTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Senior Software Engineer", "Software Developer"},
		{"Jr. Programmer", "Developer"},
		{"junior  web   developer", "web Developer"},
		{"Lead Data Engineer", "Data Developer"},
		{"Dev", "Dev"},
		{"Principal Machine Learning Engineer", "Principal Machine Le..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SimplifyTitle(tt.in, DefaultTitleMaxLen), "input %q", tt.in)
	}
}

func TestSimplifyTitle_CustomLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Data...", SimplifyTitle("Data Scientist", 4))
	assert.Equal(t, "Data Scientist", SimplifyTitle("Data Scientist", 0))
}
