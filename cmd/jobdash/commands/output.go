package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttv-voidgg/datascience-dashboard/internal/export"
	"github.com/ttv-voidgg/datascience-dashboard/internal/report"
)

const (
	outputFlag       = "output"
	outputShort      = "o"
	defaultReportOut = "jobdash-report.html"
	defaultTitle     = "Job Postings Dashboard"
)

// ErrNoOutput is returned when the --output flag is empty.
var ErrNoOutput = errors.New("output path is required (use --output)")

// NewReportCommand creates the report subcommand.
func NewReportCommand(o *GlobalOptions) *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Render the dashboard as an HTML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return ErrNoOutput
			}
			s, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if err := report.Render(f, s.dash, title); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			s.log.WithField("path", output).Info("Report written")
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, defaultReportOut, "HTML file to write")
	cmd.Flags().StringVar(&title, "title-text", defaultTitle, "report page title")

	return cmd
}

// NewExportCommand creates the export subcommand.
func NewExportCommand(o *GlobalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export every summary to an xlsx or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return ErrNoOutput
			}
			// fail on a bad extension before reading the input
			if _, err := export.FormatFromPath(output); err != nil {
				return err
			}
			s, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			if err := export.ToFile(output, s.dash); err != nil {
				return err
			}

			s.log.WithField("path", output).Info("Export written")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d jobs to %s\n", len(s.dash.Jobs), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", "output file (.xlsx or .json)")

	return cmd
}
