// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

// Config represents the CLI configuration that can be loaded from a YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `yaml:"resume"` // Path to resume snapshot JSON file
	Job    string `yaml:"job"`    // Path to job posting text file
	JobURL string `yaml:"job_url"` // URL to fetch job posting from
	Output string `yaml:"output"` // Directory for run artifacts

	// Pipeline behavior
	Formatting               *bool `yaml:"formatting"`                 // Standardize headings, dates and glyphs
	BulletRewrite            *bool `yaml:"bullet_rewrite"`             // Replace weak leading verb phrases
	KeywordInjection         *bool `yaml:"keyword_injection"`          // Inject missing job keywords
	QuantificationSuggestion *bool `yaml:"quantification_suggestions"` // Emit advisory metric templates
	MaxKeywords              int   `yaml:"max_keywords" validate:"gte=0,lte=50"`

	Verbose bool `yaml:"verbose"` // Print detailed stage output
}

var validate = validator.New()

// Load reads configuration from a YAML file. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// applyEnv overlays environment variables onto file values. Env vars win so
// a checked-in config can be overridden per invocation.
func (c *Config) applyEnv() {
	if v := os.Getenv("RESUME_OPTIMIZER_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("RESUME_OPTIMIZER_MAX_KEYWORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxKeywords = n
		}
	}
	if v := os.Getenv("RESUME_OPTIMIZER_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// PipelineOptions converts the config into pipeline options, starting from
// the all-enabled defaults and applying only the toggles the file sets.
func (c *Config) PipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()

	if c.Formatting != nil {
		opts.Formatting = *c.Formatting
	}
	if c.BulletRewrite != nil {
		opts.BulletRewrite = *c.BulletRewrite
	}
	if c.KeywordInjection != nil {
		opts.KeywordInjection = *c.KeywordInjection
	}
	if c.QuantificationSuggestion != nil {
		opts.QuantificationSuggested = *c.QuantificationSuggestion
	}
	if c.MaxKeywords > 0 {
		opts.MaxKeywords = c.MaxKeywords
	}

	return opts
}
