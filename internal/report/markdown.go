package report

import (
	"io"

	"github.com/fjglira/GoSpecRunner/internal/domain"
	tmpl "github.com/fjglira/GoSpecRunner/internal/template"
)

// MarkdownWriter renders the run report through the template engine.
type MarkdownWriter struct {
	engine       tmpl.TemplateEngine
	templateName string
}

// NewMarkdownWriter creates a MarkdownWriter using templateName, or the
// engine's default template if it is empty.
func NewMarkdownWriter(engine tmpl.TemplateEngine, templateName string) *MarkdownWriter {
	return &MarkdownWriter{engine: engine, templateName: templateName}
}

// SupportedExtensions returns the file extensions this writer handles.
func (w *MarkdownWriter) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Render returns the Markdown text of report.
func (w *MarkdownWriter) Render(report *domain.RunReport) (string, error) {
	return w.engine.Render(report, w.templateName)
}

// Write renders report to out.
func (w *MarkdownWriter) Write(out io.Writer, report *domain.RunReport) error {
	md, err := w.Render(report)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, md)
	return err
}
