package aggregate

import "github.com/ttv-voidgg/datascience-dashboard/internal/models"

func job(title, company, location string, salary ...float64) models.JobRecord {
	r := models.JobRecord{Title: title, Company: company, Location: location}
	if len(salary) == 2 {
		r.Salary = &models.Salary{Min: salary[0], Max: salary[1]}
	}
	return r
}

func repeat(n int, r models.JobRecord) []models.JobRecord {
	out := make([]models.JobRecord, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func concat(parts ...[]models.JobRecord) []models.JobRecord {
	var out []models.JobRecord
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
