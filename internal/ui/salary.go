package ui

import (
	"github.com/pterm/pterm"

	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// ColorizeSalary colors a salary figure by how high it is
func ColorizeSalary(v *float64) string {
	if v == nil {
		return pterm.Red(utils.NotAvailable)
	}
	return salaryColor(*v)(utils.FormatSalary(*v))
}

func salaryColor(v float64) func(a ...interface{}) string {
	switch {
	case v >= 130000:
		return pterm.Green // 130K+
	case v >= 90000:
		return pterm.LightGreen // 90K-130K
	case v >= 50000:
		return pterm.Yellow // 50K-90K
	default:
		return pterm.Red // under 50K
	}
}
