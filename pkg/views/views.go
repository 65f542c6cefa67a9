package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"crudapp/pkg/person"

	"github.com/Masterminds/sprig/v3"
)

const (
	baseTemplate = "base.html"
	baseName     = "base"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every view is rendered with.
type Page struct {
	Username string
	People   []*person.Person
	Person   *person.Person
}

type Templates struct {
	templates map[string]*template.Template
}

func New() (*Templates, error) {
	base, err := fs.ReadFile(templateFS, path.Join("templates", baseTemplate))
	if err != nil {
		return nil, fmt.Errorf("error reading base template: %w", err)
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("error listing templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || fname == baseTemplate || !strings.HasSuffix(fname, ".html") {
			continue
		}

		page, err := fs.ReadFile(templateFS, path.Join("templates", fname))
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", fname, err)
		}

		name := strings.TrimSuffix(fname, path.Ext(fname))
		t := template.New(name).Option("missingkey=zero").Funcs(sprig.FuncMap())
		// base first: its block defaults must not shadow the page's definitions
		if _, err := t.Parse(string(base)); err != nil {
			return nil, fmt.Errorf("error parsing %s for %s: %w", baseTemplate, fname, err)
		}
		if _, err := t.Parse(string(page)); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", fname, err)
		}
		templates[name] = t
	}

	return &Templates{templates: templates}, nil
}

func (t *Templates) Render(w io.Writer, name string, data any) error {
	tpl, ok := t.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tpl.ExecuteTemplate(w, baseName, data)
}
