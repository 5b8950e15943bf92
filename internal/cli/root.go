package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/GoSpecRunner/internal/config"
)

var (
	cfgFile     string
	verbose     bool
	reportFiles []string
	log         *logrus.Logger
)

// ExitStatus carries the process status of a run that completed with
// failures. It is not a usage error.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("run finished with exit status %d", e.Code)
}

// rootCmd is the base command for specrun.
var rootCmd = &cobra.Command{
	Use:   "specrun",
	Short: "Run behaviour specifications and report the outcome",
	Long: `specrun runs features written with the spec package, prints a
"FAILED:" block for every failing assertion, a one-line summary at the end,
and exits with the number of failures.

Reports, metrics and the exit policy are driven by a YAML configuration
file (specrun.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "specrun.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Initialize default logger (overridden in PersistentPreRun)
	log = logrus.New()
	log.SetOutput(os.Stderr)
}

// loadConfig reads the config file. A missing file is only an error when
// --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(cfgFile)
}

// configureLogging applies the logging section on top of the flags.
func configureLogging(cfg config.LoggingConfig) (func(), error) {
	if !verbose {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid logging.level: %w", err)
		}
		log.SetLevel(level)
	}
	if cfg.File == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
