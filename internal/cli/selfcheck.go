package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fjglira/GoSpecRunner/internal/config"
	"github.com/fjglira/GoSpecRunner/internal/report"
	"github.com/fjglira/GoSpecRunner/internal/runner"
	"github.com/fjglira/GoSpecRunner/internal/selfspec"
	tmpl "github.com/fjglira/GoSpecRunner/internal/template"
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the runner's own specification",
	Long: `Runs the features describing the spec package itself through the
configured sinks and reports, then exits with the failure count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Reports.Files = append(cfg.Reports.Files, reportFiles...)

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		closeLog, err := configureLogging(cfg.Logging)
		if err != nil {
			return err
		}
		defer closeLog()

		log.Info("Configuration loaded successfully")
		log.WithField("reports", cfg.Reports.Files).Debug("Report files")

		code, err := runSuites(cfg, outputFor(cmd, cfg), selfspec.Suite)
		if err != nil {
			return err
		}
		if code != 0 {
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return &ExitStatus{Code: code}
		}
		return nil
	},
}

func init() {
	selfcheckCmd.Flags().StringSliceVar(&reportFiles, "report", nil, "additional report file (.yaml, .md, .html); repeatable")
	rootCmd.AddCommand(selfcheckCmd)
}

func outputFor(cmd *cobra.Command, cfg *config.Config) io.Writer {
	if cfg.Output.Stream == "stderr" {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// runSuites wires all components and runs the suites.
func runSuites(cfg *config.Config, out io.Writer, suites ...runner.Suite) (int, error) {
	// Create template engine
	engine, err := tmpl.NewEngine(cfg.Templates.Directory, cfg.Templates.Default)
	if err != nil {
		return 1, fmt.Errorf("failed to create template engine: %w", err)
	}

	// Create writer registry
	markdown := report.NewMarkdownWriter(engine, cfg.Templates.Default)
	registry := report.NewRegistry()
	registry.Register(report.NewYAMLWriter())
	registry.Register(markdown)
	registry.Register(report.NewHTMLWriter(markdown))

	// Create and run runner
	r := runner.NewRunner(registry, out, log)
	return r.Run(cfg, suites...)
}
