package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/GoSpecRunner/internal/config"
	"github.com/fjglira/GoSpecRunner/internal/domain"
	"github.com/fjglira/GoSpecRunner/internal/report"
	"github.com/fjglira/GoSpecRunner/pkg/spec"
)

// Suite declares and runs features against the default sink.
type Suite func()

// Runner is the top-level orchestrator.
type Runner interface {
	Run(cfg *config.Config, suites ...Suite) (int, error)
}

// DefaultRunner implements Runner by wiring sinks and report writers together.
type DefaultRunner struct {
	registry report.WriterRegistry
	out      io.Writer
	log      *logrus.Logger
}

// NewRunner creates a new DefaultRunner printing results to out.
func NewRunner(registry report.WriterRegistry, out io.Writer, log *logrus.Logger) *DefaultRunner {
	return &DefaultRunner{
		registry: registry,
		out:      out,
		log:      log,
	}
}

// Run executes the suites: sinks → suites → completion → reports → exit code.
// The returned code follows cfg.Exit; the error reports problems writing
// reports, never assertion failures.
func (r *DefaultRunner) Run(cfg *config.Config, suites ...Suite) (int, error) {
	// Step 1: Assemble the sinks behind the console formatter
	text := spec.NewTextSink(r.out)
	collector := report.NewCollector(cfg.Reports.Title)
	others := []spec.Sink{collector, report.NewLogSink(r.log)}

	var metrics *report.MetricsSink
	if cfg.Metrics.Textfile != "" {
		metrics = report.NewMetricsSink(cfg.Metrics.Namespace)
		others = append(others, metrics)
	}
	sink := report.NewTee(text, others...)

	prev := spec.SetDefaultSink(sink)
	defer spec.SetDefaultSink(prev)

	// Step 2: Run every suite in order
	r.log.Infof("Running %d suite(s)", len(suites))
	for i, suite := range suites {
		r.log.Debugf("Running suite %d", i+1)
		runSuite(sink, suite)
	}

	// Step 3: Finish the run
	failures := spec.Done(spec.WithSink(sink), spec.WithoutExit())
	code := ExitCode(cfg.Exit, failures)
	r.log.WithFields(logrus.Fields{"failures": failures, "exit_code": code}).Info("Run complete")

	// Step 4: Write report files
	run := collector.Report()
	for _, path := range cfg.Reports.Files {
		if err := r.writeReport(path, run); err != nil {
			return code, err
		}
	}

	// Step 5: Export metrics
	if metrics != nil {
		r.log.Infof("Writing metrics: %s", cfg.Metrics.Textfile)
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return code, err
		}
	}

	return code, nil
}

// runSuite runs suite, reporting a panic that escaped every feature scope
// as raised outside of any feature.
func runSuite(sink spec.Sink, suite Suite) {
	defer func() {
		if r := recover(); r != nil {
			sink.Raised(nil, nil, &spec.PanicError{Value: r})
		}
	}()
	suite()
}

// writeReport renders run with the writer registered for the file extension.
func (r *DefaultRunner) writeReport(path string, run *domain.RunReport) error {
	w, err := r.registry.WriterFor(filepath.Ext(path))
	if err != nil {
		return domain.NewErrorWithSuggestion("report", path, 0, err.Error(),
			"use a .yaml, .md or .html extension in reports.files", nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return domain.NewErrorWithSuggestion("report", path, 0,
			"failed to create report directory",
			"check that the parent directory has write permissions",
			err)
	}

	f, err := os.Create(path)
	if err != nil {
		return domain.NewError("report", path, 0, "failed to create report file", err)
	}
	defer f.Close()

	r.log.Infof("Writing: %s", path)
	if err := w.Write(f, run); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return f.Close()
}

// ExitCode maps a failure count to a process status according to the exit
// policy: "binary" exits with 1 on any failure, "count" with the failure
// count clamped to MaxCode.
func ExitCode(cfg config.ExitConfig, failures int) int {
	if failures <= 0 {
		return 0
	}
	if cfg.Policy == "binary" {
		return 1
	}
	code := spec.ExitCode(failures)
	if cfg.MaxCode > 0 && code > cfg.MaxCode {
		code = cfg.MaxCode
	}
	return code
}
