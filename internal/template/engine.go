package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

//go:embed templates/*.tmpl
var builtinTemplates embed.FS

// TemplateEngine renders a RunReport into Markdown.
type TemplateEngine interface {
	Render(report *domain.RunReport, templateName string) (string, error)
	ListTemplates() []string
}

// DefaultEngine implements TemplateEngine.
type DefaultEngine struct {
	templates   map[string]*template.Template
	defaultName string
	templateDir string
}

// NewEngine creates a new template engine with the built-in templates. If
// templateDir is set, its .tmpl files are loaded as well and override
// built-in templates of the same name.
func NewEngine(templateDir string, defaultTemplate string) (*DefaultEngine, error) {
	engine := &DefaultEngine{
		templates:   make(map[string]*template.Template),
		defaultName: defaultTemplate,
		templateDir: templateDir,
	}

	builtin, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		return nil, domain.NewError("template", "", 0, "failed to open built-in templates", err)
	}
	if err := engine.loadTemplates(builtin, "built-in"); err != nil {
		return nil, err
	}
	if templateDir != "" {
		if err := engine.loadTemplates(os.DirFS(templateDir), templateDir); err != nil {
			return nil, err
		}
	}

	if _, ok := engine.templates[defaultTemplate]; !ok {
		return nil, domain.NewErrorWithSuggestion("template", templateDir, 0,
			fmt.Sprintf("default template %q not found (available: %s)", defaultTemplate, strings.Join(engine.ListTemplates(), ", ")),
			"set templates.default to one of the available templates",
			nil)
	}

	return engine, nil
}

// loadTemplates reads all .tmpl files from fsys.
func (e *DefaultEngine) loadTemplates(fsys fs.FS, origin string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return domain.NewError("template", origin, 0, "failed to read template directory", err)
	}

	funcMap := CustomFuncMap()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		file := path.Join(origin, entry.Name())
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return domain.NewError("template", file, 0, "failed to read template file", err)
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
		if err != nil {
			return domain.NewError("template", file, 0, "failed to parse template", err)
		}

		e.templates[name] = tmpl
	}

	return nil
}

// Render renders a RunReport with the named template, or the default
// template if templateName is empty.
func (e *DefaultEngine) Render(report *domain.RunReport, templateName string) (string, error) {
	tmplName := e.defaultName
	if templateName != "" {
		tmplName = templateName
	}

	tmpl, ok := e.templates[tmplName]
	if !ok {
		return "", domain.NewError("template", "", 0,
			fmt.Sprintf("template %q not found (available: %s)", tmplName, strings.Join(e.ListTemplates(), ", ")), nil)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", domain.NewError("template", tmplName, 0, "failed to execute template", err)
	}

	return buf.String(), nil
}

// ListTemplates returns the sorted names of all loaded templates.
func (e *DefaultEngine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
