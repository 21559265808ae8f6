package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures CLI options sourced from the config file or flags.
type Config struct {
	Repo        string   `yaml:"repo"`
	Workflow    string   `yaml:"workflow"`
	Job         string   `yaml:"job"`
	Step        string   `yaml:"step"`
	Interactive bool     `yaml:"interactive"`
	Format      string   `yaml:"format"`
	Concurrency int      `yaml:"concurrency"`
	IgnoreSteps []string `yaml:"ignore_steps"`
	Verbose     bool     `yaml:"verbose"`
}

const (
	// FormatPretty renders a human readable table.
	FormatPretty = "pretty"
	// FormatJSON renders machine readable output.
	FormatJSON = "json"

	// DefaultConcurrency bounds parallel per-run job fetches.
	DefaultConcurrency = 4
)

// Default returns the baseline configuration used when no flags or config
// file specify values.
func Default() Config {
	return Config{
		Format:      FormatPretty,
		Concurrency: DefaultConcurrency,
	}
}

// Load reads .citrend.yml from root when present. Missing files are ignored.
func Load(root string) (Config, error) {
	cfg := Default()
	path := filepath.Join(root, ".citrend.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return merge(cfg, fileCfg), nil
}

func merge(base, override Config) Config {
	out := base

	if override.Repo != "" {
		out.Repo = override.Repo
	}
	if override.Workflow != "" {
		out.Workflow = override.Workflow
	}
	if override.Job != "" {
		out.Job = override.Job
	}
	if override.Step != "" {
		out.Step = override.Step
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Concurrency > 0 {
		out.Concurrency = override.Concurrency
	}
	if len(override.IgnoreSteps) > 0 {
		out.IgnoreSteps = append([]string{}, override.IgnoreSteps...)
	}
	if override.Interactive {
		out.Interactive = true
	}
	if override.Verbose {
		out.Verbose = true
	}

	return out
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are
// present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Repo.Set {
		cfg.Repo = flags.Repo.Value
	}
	if flags.Workflow.Set {
		cfg.Workflow = flags.Workflow.Value
	}
	if flags.Job.Set {
		cfg.Job = flags.Job.Value
	}
	if flags.Step.Set {
		cfg.Step = flags.Step.Value
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Concurrency.Set {
		cfg.Concurrency = flags.Concurrency.Value
	}
	if flags.Interactive.Set {
		cfg.Interactive = flags.Interactive.Value
	}
	if flags.Verbose.Set {
		cfg.Verbose = flags.Verbose.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was
// set explicitly.
type FlagValues struct {
	Repo        StringFlag
	Workflow    StringFlag
	Job         StringFlag
	Step        StringFlag
	Format      StringFlag
	Concurrency IntFlag
	Interactive BoolFlag
	Verbose     BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// IntFlag represents an int flag and whether it was set.
type IntFlag struct {
	Value int
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}

// ValidateRepo checks the owner/repo shape: two non-empty segments separated
// by exactly one slash. Runs before any network call.
func ValidateRepo(repo string) error {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("repository must be in owner/repo form, got %q", repo)
	}
	return nil
}

// ValidatePR checks that the PR number is a non-negative integer.
func ValidatePR(number int) error {
	if number < 0 {
		return fmt.Errorf("pull request number must be non-negative, got %d", number)
	}
	return nil
}
