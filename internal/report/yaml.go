package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

// YAMLWriter writes the run report as a YAML document.
type YAMLWriter struct{}

// NewYAMLWriter creates a new YAMLWriter.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// SupportedExtensions returns the file extensions this writer handles.
func (w *YAMLWriter) SupportedExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Write encodes report to out.
func (w *YAMLWriter) Write(out io.Writer, report *domain.RunReport) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return domain.NewError("report", "", 0, "failed to encode YAML report", err)
	}
	return enc.Close()
}
