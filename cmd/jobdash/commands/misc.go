package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ttv-voidgg/datascience-dashboard/internal/config"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// NewTopPayCommand creates the top-paying subcommand, which lists the
// companies the --top-pay filter keeps.
func NewTopPayCommand(o *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "top-paying",
		Short: "Show the list of top paying companies used by --top-pay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(o.ConfigPath)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			names := utils.NewTopPayingSet(cfg.Filters.TopPayingCompanies).Names()
			fmt.Fprintf(w, "Top paying companies (%d):\n", len(names))
			for i, name := range names {
				fmt.Fprintf(w, "%3d. %s\n", i+1, name)
			}
			return nil
		},
	}
}

// NewExamplesCommand creates the examples subcommand.
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printExamples(cmd.OutOrStdout())
		},
	}
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 jobdash Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Show the overview of a job postings file:")
	fmt.Fprintln(w, "   jobdash overview jobs.json")

	fmt.Fprintln(w, "\n2. Show salary bands by location for jobs in Austin and Boston only:")
	fmt.Fprintln(w, "   jobdash salary jobs.json --location Austin --location Boston")

	fmt.Fprintln(w, "\n3. Show companies for jobs paying between $90,000 and $150,000, and silence the banner:")
	fmt.Fprintln(w, "   jobdash companies jobs.json --min-salary 90000 --max-salary 150000 --nobanner")

	fmt.Fprintln(w, "\n4. List \"Data Scientist\" jobs at top paying companies, highest salary first:")
	fmt.Fprintln(w, "   jobdash jobs jobs.json --title \"data scientist\" --top-pay --sort salary --desc")

	fmt.Fprintln(w, "\n5. Show the second page of jobs sorted by company:")
	fmt.Fprintln(w, "   jobdash jobs jobs.json --sort company --page 2")

	fmt.Fprintln(w, "\n6. Write an HTML report with interactive charts:")
	fmt.Fprintln(w, "   jobdash report jobs.json -o report.html")

	fmt.Fprintln(w, "\n7. Export every summary to a spreadsheet, averaging over all jobs:")
	fmt.Fprintln(w, "   jobdash export jobs.json -o summary.xlsx --average-mode all")

	fmt.Fprintln(w, "\n8. Display the list of top paying companies:")
	fmt.Fprintln(w, "   jobdash top-paying")
}

// NewVersionCommand creates the version subcommand.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jobdash %s\n", Version)
		},
	}
}
