package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ttv-voidgg/datascience-dashboard/internal/aggregate"
	"github.com/ttv-voidgg/datascience-dashboard/internal/listing"
	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
	"github.com/ttv-voidgg/datascience-dashboard/internal/utils"
)

var (
	ErrInvalidBands     = errors.New("invalid salary bands")
	ErrInvalidThreshold = errors.New("other threshold must not be negative")
	ErrInvalidTopN      = errors.New("top-N limits must be positive")
)

// AppConfig represents the application configuration
type AppConfig struct {
	Aggregation AggregationConfig `yaml:"aggregation"`
	Display     DisplayConfig     `yaml:"display"`
	Filters     FiltersConfig     `yaml:"filters"`
}

type AggregationConfig struct {
	Bands          []models.SalaryBand `yaml:"bands"`
	HeatBands      []models.SalaryBand `yaml:"heat_bands"`
	OtherThreshold int                 `yaml:"other_threshold"`
	TopCompanies   int                 `yaml:"top_companies"`
	TopTitles      int                 `yaml:"top_titles"`
	TitleMaxLen    int                 `yaml:"title_max_len"`
	AverageMode    string              `yaml:"average_mode"`
}

type DisplayConfig struct {
	PageSize   int  `yaml:"page_size"`
	ShowBanner bool `yaml:"show_banner"`
}

type FiltersConfig struct {
	TopPayingCompanies []string `yaml:"top_paying_companies"`
}

// Mode returns the parsed overview average mode
func (c *AppConfig) Mode() (aggregate.AverageMode, error) {
	return aggregate.ParseAverageMode(c.Aggregation.AverageMode)
}

// Load reads .env and the first config.yaml it finds, falling back to defaults
// for a missing file or missing keys, then applies environment overrides.
// An explicit path that does not exist is an error.
func Load(explicitPath string) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	path, err := findConfigPath(explicitPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read config %s: %w", path, readErr)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicitPath, nil
	}

	// Check various locations for config.yaml
	paths := []string{os.Getenv("JOBDASH_CONFIG"), "config.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "jobdash", "config.yaml"))
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Aggregation: AggregationConfig{
			Bands:          aggregate.DefaultBands(),
			HeatBands:      aggregate.HeatBands(),
			OtherThreshold: aggregate.DefaultOtherThreshold,
			TopCompanies:   10,
			TopTitles:      8,
			TitleMaxLen:    utils.DefaultTitleMaxLen,
			AverageMode:    aggregate.AverageOverSalaried.String(),
		},
		Display: DisplayConfig{
			PageSize:   listing.DefaultPageSize,
			ShowBanner: true,
		},
		Filters: FiltersConfig{
			TopPayingCompanies: utils.DefaultTopPayingCompanies(),
		},
	}
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv("JOBDASH_AVERAGE_MODE"); v != "" {
		c.Aggregation.AverageMode = v
	}
	if v := os.Getenv("JOBDASH_OTHER_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JOBDASH_OTHER_THRESHOLD: %w", err)
		}
		c.Aggregation.OtherThreshold = n
	}
	if v := os.Getenv("JOBDASH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("JOBDASH_PAGE_SIZE: %w", err)
		}
		c.Display.PageSize = n
	}
	return nil
}

// normalize lets a config file leave the upper bound of the last band out
func (c *AppConfig) normalize() {
	for _, bands := range [][]models.SalaryBand{c.Aggregation.Bands, c.Aggregation.HeatBands} {
		if n := len(bands); n > 0 && bands[n-1].Max == 0 {
			bands[n-1].Max = math.Inf(1)
		}
	}
	if c.Display.PageSize <= 0 {
		c.Display.PageSize = listing.DefaultPageSize
	}
	if c.Aggregation.TitleMaxLen <= 0 {
		c.Aggregation.TitleMaxLen = utils.DefaultTitleMaxLen
	}
}

// Validate checks that bands are ascending, contiguous and end unbounded, and
// that numeric limits are usable
func (c *AppConfig) Validate() error {
	if err := validateBands("bands", c.Aggregation.Bands); err != nil {
		return err
	}
	if err := validateBands("heat_bands", c.Aggregation.HeatBands); err != nil {
		return err
	}
	if c.Aggregation.OtherThreshold < 0 {
		return ErrInvalidThreshold
	}
	if c.Aggregation.TopCompanies <= 0 || c.Aggregation.TopTitles <= 0 {
		return ErrInvalidTopN
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	return nil
}

func validateBands(name string, bands []models.SalaryBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidBands, name)
	}
	for i, b := range bands {
		if b.Label == "" {
			return fmt.Errorf("%w: %s[%d] has no label", ErrInvalidBands, name, i)
		}
		if b.Max <= b.Min {
			return fmt.Errorf("%w: %s[%d] %q is empty", ErrInvalidBands, name, i, b.Label)
		}
		if i > 0 && b.Min != bands[i-1].Max {
			return fmt.Errorf("%w: %s[%d] %q does not start where %q ends", ErrInvalidBands, name, i, b.Label, bands[i-1].Label)
		}
	}
	if last := bands[len(bands)-1]; !math.IsInf(last.Max, 1) {
		return fmt.Errorf("%w: last band of %s must be unbounded", ErrInvalidBands, name)
	}
	return nil
}
