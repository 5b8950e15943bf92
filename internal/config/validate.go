package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

var (
	reportExtensions = map[string]bool{".yaml": true, ".yml": true, ".md": true, ".markdown": true, ".html": true, ".htm": true}
	metricNameRe     = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Output validation
	if cfg.Output.Stream != "stdout" && cfg.Output.Stream != "stderr" {
		errs = append(errs, fmt.Sprintf("output.stream must be stdout or stderr (got %q)", cfg.Output.Stream))
	}

	// Reports validation
	for _, f := range cfg.Reports.Files {
		ext := strings.ToLower(filepath.Ext(f))
		if !reportExtensions[ext] {
			errs = append(errs, fmt.Sprintf("reports.files: %q must end with .yaml, .yml, .md, .markdown, .html or .htm", f))
		}
	}

	// Metrics validation
	if cfg.Metrics.Textfile != "" && !metricNameRe.MatchString(cfg.Metrics.Namespace) {
		errs = append(errs, fmt.Sprintf("metrics.namespace must be a valid metric name prefix (got %q)", cfg.Metrics.Namespace))
	}

	// Exit validation
	if cfg.Exit.Policy != "count" && cfg.Exit.Policy != "binary" {
		errs = append(errs, fmt.Sprintf("exit.policy must be count or binary (got %q)", cfg.Exit.Policy))
	}
	if cfg.Exit.MaxCode < 1 || cfg.Exit.MaxCode > 255 {
		errs = append(errs, fmt.Sprintf("exit.max_code must be between 1 and 255 (got %d)", cfg.Exit.MaxCode))
	}

	// Templates validation
	if cfg.Templates.Default == "" {
		errs = append(errs, "templates.default must not be empty")
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
