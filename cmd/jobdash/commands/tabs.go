package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/filter"
	"github.com/ttv-voidgg/datascience-dashboard/internal/listing"
	"github.com/ttv-voidgg/datascience-dashboard/internal/ui"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// renderFunc writes one dashboard view
type renderFunc func(w io.Writer, d *dashboard.Dashboard) error

func newViewCommand(o *GlobalOptions, use, short string, render renderFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			s.header(w, o)
			return render(w, s.dash)
		},
	}
}

// NewOverviewCommand creates the overview subcommand.
func NewOverviewCommand(o *GlobalOptions) *cobra.Command {
	return newViewCommand(o, "overview", "Show header metrics, jobs by location and salary distribution", renderOverview)
}

// NewLocationCommand creates the location subcommand.
func NewLocationCommand(o *GlobalOptions) *cobra.Command {
	return newViewCommand(o, "location", "Show location heat, the location by salary grid and salary by location", renderLocation)
}

// NewSalaryCommand creates the salary subcommand.
func NewSalaryCommand(o *GlobalOptions) *cobra.Command {
	return newViewCommand(o, "salary", "Show the salary distribution and salary bands by location", renderSalary)
}

// NewCompaniesCommand creates the companies subcommand.
func NewCompaniesCommand(o *GlobalOptions) *cobra.Command {
	return newViewCommand(o, "companies", "Show top companies and job titles", renderCompanies)
}

func renderOverview(w io.Writer, d *dashboard.Dashboard) error {
	header, err := ui.Overview(d)
	if err != nil {
		return err
	}
	locations, err := ui.GroupBars(d.Locations)
	if err != nil {
		return err
	}
	salaries, err := ui.BandBars(d.SalaryDistribution)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, header)
	fmt.Fprint(w, ui.Section("Jobs by Location"))
	fmt.Fprintln(w, locations)
	fmt.Fprint(w, ui.Section("Salary Distribution"))
	fmt.Fprintln(w, salaries)
	return nil
}

func renderLocation(w io.Writer, d *dashboard.Dashboard) error {
	grid, err := ui.Grid(d.LocationGrid)
	if err != nil {
		return err
	}

	fmt.Fprint(w, ui.Section("Location Heat"))
	fmt.Fprintln(w, ui.Heat(d.LocationHeat))
	fmt.Fprint(w, ui.Section("Location by Salary Range"))
	fmt.Fprintln(w, grid)
	fmt.Fprint(w, ui.Section("Average Salary by Location"))
	fmt.Fprintln(w, ui.LocationSalaries(d.LocationSalaries))
	return nil
}

func renderSalary(w io.Writer, d *dashboard.Dashboard) error {
	bars, err := ui.BandBars(d.SalaryDistribution)
	if err != nil {
		return err
	}

	fmt.Fprint(w, ui.Section("Salary Distribution"))
	fmt.Fprintln(w, bars)
	fmt.Fprint(w, ui.Section("Salary Ranges by Location"))
	fmt.Fprintln(w, ui.CrossTab(d.SalaryByLocation))
	return nil
}

func renderCompanies(w io.Writer, d *dashboard.Dashboard) error {
	fmt.Fprint(w, ui.Section("Top Companies"))
	fmt.Fprintln(w, ui.Companies(d.Companies))
	fmt.Fprint(w, ui.Section("Job Titles"))
	fmt.Fprintln(w, ui.Titles(d.Titles))
	return nil
}

// NewJobsCommand creates the jobs subcommand.
func NewJobsCommand(o *GlobalOptions) *cobra.Command {
	var (
		sortBy string
		desc   bool
		page   int
	)

	cmd := &cobra.Command{
		Use:   "jobs <file>",
		Short: "List job postings, sorted and paginated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := listing.ParseColumn(sortBy)
			if err != nil {
				return err
			}
			s, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			s.header(w, o)
			sorted := listing.Sort(s.dash.Jobs, col, desc)
			p := listing.Paginate(sorted, page, s.cfg.Display.PageSize)
			fmt.Fprintln(w, ui.JobsPage(p, col, desc))
			return nil
		},
	}

	cols := make([]string, len(listing.Columns))
	for i, c := range listing.Columns {
		cols[i] = string(c)
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(listing.ColumnSalary), "sort column: "+strings.Join(cols, ", "))
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().IntVar(&page, "page", 1, "page number")

	return cmd
}

// NewFiltersCommand creates the filters subcommand, which lists the values the
// filter flags accept for a file. Filter flags are ignored.
func NewFiltersCommand(o *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters <file>",
		Short: "List the locations, companies and salary range of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			options := filter.AvailableOptions(s.records)

			fmt.Fprint(w, ui.Section("Locations"))
			for _, loc := range options.Locations {
				fmt.Fprintf(w, "  %s\n", loc)
			}
			fmt.Fprint(w, ui.Section("Companies"))
			for _, c := range options.Companies {
				fmt.Fprintf(w, "  %s\n", c)
			}
			fmt.Fprint(w, ui.Section("Salary Range"))
			if lo, hi, ok := filter.SalaryBounds(s.records); ok {
				fmt.Fprintf(w, "  %s - %s\n", utils.FormatSalary(lo), utils.FormatSalary(hi))
			} else {
				fmt.Fprintf(w, "  %s\n", utils.NotAvailable)
			}
			return nil
		},
	}
}
