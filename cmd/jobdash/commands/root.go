// Package commands implements the jobdash subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ttv-voidgg/datascience-dashboard/internal/aggregate"
	"github.com/ttv-voidgg/datascience-dashboard/internal/config"
	"github.com/ttv-voidgg/datascience-dashboard/internal/dashboard"
	"github.com/ttv-voidgg/datascience-dashboard/internal/dataset"
	"github.com/ttv-voidgg/datascience-dashboard/internal/filter"
	"github.com/ttv-voidgg/datascience-dashboard/internal/logger"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/ui"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

// Version is overridden at build time with -ldflags "-X ...commands.Version=..."
var Version = "dev"

const (
	flagMinSalary = "min-salary"
	flagMaxSalary = "max-salary"
)

// GlobalOptions are the flags shared by every dashboard command
type GlobalOptions struct {
	ConfigPath  string
	Locations   []string
	Companies   []string
	MinSalary   float64
	MaxSalary   float64
	Title       string
	TopPay      bool
	AverageMode string
	Progress    bool
	NoBanner    bool
	Debug       bool
}

// NewRootCommand builds the jobdash command tree
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "jobdash",
		Short: "Summarize a JSON file of job postings in the terminal",
		Long: `jobdash reads a JSON array of job postings and summarizes it by
location, salary band, company and title.

Commands:
  overview    header metrics, jobs by location and salary distribution
  location    location heat, location by salary grid, salary by location
  salary      salary distribution and salary bands by location
  companies   top companies and job titles
  jobs        sortable, paginated job listing
  report      HTML report with interactive charts
  export      xlsx or JSON export of every summary`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config.yaml")
	flags.StringArrayVar(&opts.Locations, "location", nil, "only show jobs in this location (repeatable)")
	flags.StringArrayVar(&opts.Companies, "company", nil, "only show jobs at this company (repeatable)")
	flags.Float64Var(&opts.MinSalary, flagMinSalary, 0, "minimum average salary")
	flags.Float64Var(&opts.MaxSalary, flagMaxSalary, 0, "maximum average salary")
	flags.StringVar(&opts.Title, "title", "", "title keyword to filter by")
	flags.BoolVar(&opts.TopPay, "top-pay", false, "only show jobs from top paying companies")
	flags.StringVar(&opts.AverageMode, "average-mode", "", "overview average divisor: salaried or all")
	flags.BoolVar(&opts.Progress, "progress", false, "show a progress bar while reading the input file")
	flags.BoolVar(&opts.NoBanner, "nobanner", false, "silence the banner")
	flags.BoolVar(&opts.NoBanner, "silence", false, "silence the banner (alias for --nobanner)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		NewOverviewCommand(opts),
		NewLocationCommand(opts),
		NewSalaryCommand(opts),
		NewCompaniesCommand(opts),
		NewJobsCommand(opts),
		NewFiltersCommand(opts),
		NewReportCommand(opts),
		NewExportCommand(opts),
		NewTopPayCommand(opts),
		NewExamplesCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// session is one loaded and summarized input file
type session struct {
	cfg     *config.AppConfig
	log     *logger.Logger
	records []models.JobRecord
	dash    *dashboard.Dashboard
}

func (o *GlobalOptions) load(cmd *cobra.Command, path string) (*session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	log := logger.New().WithRun(cmd.Name())
	log.SetDebug(o.Debug)

	settings, err := o.settings(cmd, cfg)
	if err != nil {
		return nil, err
	}

	var progress io.Writer
	if o.Progress {
		progress = cmd.ErrOrStderr()
	}
	records, err := dataset.Load(path, dataset.Options{Progress: progress, Log: log})
	if err != nil {
		log.WithError(err).Error("Failed to load job postings")
		return nil, err
	}

	d := dashboard.Build(records, settings)
	log.WithField("records", d.TotalRecords).
		WithField("shown", len(d.Jobs)).
		Debug("Dashboard built")

	return &session{cfg: cfg, log: log, records: records, dash: d}, nil
}

// settings merges the configuration with command line overrides
func (o *GlobalOptions) settings(cmd *cobra.Command, cfg *config.AppConfig) (dashboard.Settings, error) {
	settings, err := dashboard.SettingsFromConfig(cfg)
	if err != nil {
		return dashboard.Settings{}, err
	}
	if o.AverageMode != "" {
		mode, err := aggregate.ParseAverageMode(o.AverageMode)
		if err != nil {
			return dashboard.Settings{}, err
		}
		settings.AverageMode = mode
	}
	settings.Filter = o.criteria(cmd, cfg)
	return settings, nil
}

// criteria turns the filter flags into filter criteria. Salary bounds only
// apply when the flag was given.
func (o *GlobalOptions) criteria(cmd *cobra.Command, cfg *config.AppConfig) filter.Criteria {
	c := filter.Criteria{
		Locations: o.Locations,
		Companies: o.Companies,
		Title:     o.Title,
	}
	if cmd.Flags().Changed(flagMinSalary) {
		v := o.MinSalary
		c.SalaryMin = &v
	}
	if cmd.Flags().Changed(flagMaxSalary) {
		v := o.MaxSalary
		c.SalaryMax = &v
	}
	if o.TopPay {
		c.TopPay = utils.NewTopPayingSet(cfg.Filters.TopPayingCompanies)
	}
	return c
}

// header prints the banner and a note when filters hid some postings
func (s *session) header(w io.Writer, o *GlobalOptions) {
	ui.PrintBanner(w, o.NoBanner || !s.cfg.Display.ShowBanner)
	if s.dash.Filtered() {
		fmt.Fprintf(w, "Showing %d of %d jobs (filtered)\n\n", len(s.dash.Jobs), s.dash.TotalRecords)
	}
}
