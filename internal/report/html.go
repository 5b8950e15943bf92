package report

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// HTMLWriter converts the Markdown report into a standalone HTML page.
type HTMLWriter struct {
	markdown *MarkdownWriter
	md       goldmark.Markdown
}

// NewHTMLWriter creates a new HTMLWriter on top of a MarkdownWriter.
func NewHTMLWriter(markdown *MarkdownWriter) *HTMLWriter {
	return &HTMLWriter{
		markdown: markdown,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// SupportedExtensions returns the file extensions this writer handles.
func (w *HTMLWriter) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

// Write renders report to out.
func (w *HTMLWriter) Write(out io.Writer, report *domain.RunReport) error {
	src, err := w.markdown.Render(report)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := w.md.Convert([]byte(src), &body); err != nil {
		return domain.NewError("report", "", 0, "failed to convert markdown report to HTML", err)
	}

	_, err = fmt.Fprintf(out, htmlPage, html.EscapeString(report.Title), body.String())
	return err
}
