package template

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

// CustomFuncMap returns the custom template functions available in templates.
func CustomFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"toLower":   strings.ToLower,
		"toUpper":   strings.ToUpper,
		"replace":   strings.ReplaceAll,
		"trimSpace": strings.TrimSpace,
		"join":      strings.Join,
		"indent": func(spaces int, s string) string {
			pad := strings.Repeat(" ", spaces)
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = pad + line
				}
			}
			return strings.Join(lines, "\n")
		},
		"mark": func(ok bool) string {
			if ok {
				return "✔"
			}
			return "✘"
		},
		"escape": escapeMarkdown,
		"phrase": Phrase,
		"summary": Summary,
		"duration": func(from, to time.Time) string {
			return to.Sub(from).Round(time.Millisecond).String()
		},
	}
}

// Phrase renders an assertion record as an English sentence.
func Phrase(a domain.AssertionRecord) string {
	return strings.Join([]string{a.Subject, a.Meaning, a.Verb, a.Expected}, " ")
}

// Summary renders the same summary line the console prints at the end of a run.
func Summary(r *domain.RunReport) string {
	if r.Failed > 0 {
		return fmt.Sprintf("%d failed. %d of %d assertions passed.", r.Failed, r.Passed, r.Total())
	}
	return fmt.Sprintf("%d of %d assertions passed.", r.Passed, r.Passed)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "#", `\#`, "<", "&lt;", ">", "&gt;", "|", `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
