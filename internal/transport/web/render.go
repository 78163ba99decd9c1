package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// View names.
const (
	viewSignup     = "signup"
	viewSignin     = "signin"
	viewForgot     = "forgot_password"
	viewSettings   = "settings"
	viewNotes      = "notes"
	viewPadForm    = "pad_form"
	viewPadDelete  = "pad_delete"
	viewNoteForm   = "note_form"
	viewNoteView   = "note_view"
	viewNoteDelete = "note_delete"
	viewError      = "error"
)

const layoutFile = "layout.html"

// Renderer writes a view with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view string, data any) error
}

// TemplateRenderer renders html/template views wrapped in a shared layout.
type TemplateRenderer struct {
	views map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("02 Jan 2006 15:04") },
	"preview": func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "..."
	},
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

// NewTemplateRenderer parses the embedded templates. Each page template is
// parsed together with the layout so pages can override its blocks.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	return newTemplateRenderer(templateFS, "templates")
}

func newTemplateRenderer(fsys fs.FS, dir string) (*TemplateRenderer, error) {
	pages, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	views := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		if name == layoutFile {
			continue
		}
		t, err := template.New(layoutFile).Funcs(templateFuncs).ParseFS(fsys, path.Join(dir, layoutFile), page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		views[strings.TrimSuffix(name, ".html")] = t
	}

	return &TemplateRenderer{views: views}, nil
}

// Render executes view into a buffer first so a template error never leaves
// a half-written page.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, view string, data any) error {
	t, ok := r.views[view]
	if !ok {
		return fmt.Errorf("unknown view %q", view)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutFile, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
