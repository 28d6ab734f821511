// Package content supplies the opaque page markup the UI renders. Pages
// are embedded markdown; an optional content directory overrides them and
// can be watched for live reloads.
package content

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"folio/internal/route"
)

//go:embed pages/*.md
var builtin embed.FS

// pageSpec fixes the route table: path, nav label, and backing file.
// Declaration order matters; the first entry is the fallback for
// unresolved paths.
var pageSpec = []struct {
	path  string
	label string
	file  string
}{
	{"/", "home", "home.md"},
	{"/about", "about", "about.md"},
	{"/work", "the work", "work.md"},
}

// Provider resolves page markup, preferring files under dir (when set)
// over the embedded defaults.
type Provider struct {
	dir string
}

// NewProvider returns a provider. dir may be empty, in which case only the
// embedded pages are served.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// Dir returns the override directory, or "".
func (p *Provider) Dir() string { return p.dir }

// Routes builds the full route table with markup attached. An unreadable
// home page is fatal: without it no page can render.
func (p *Provider) Routes() ([]route.Route, error) {
	routes := make([]route.Route, 0, len(pageSpec))
	for _, s := range pageSpec {
		markup, err := p.page(s.file)
		if err != nil {
			return nil, fmt.Errorf("loading page %s: %w", s.file, err)
		}
		routes = append(routes, route.Route{Path: s.path, Label: s.label, Markup: markup})
	}
	return routes, nil
}

// PathForFile maps a markdown file name back to its route path, for reload
// notifications. Returns "" for files that back no page.
func PathForFile(name string) string {
	base := filepath.Base(name)
	for _, s := range pageSpec {
		if s.file == base {
			return s.path
		}
	}
	return ""
}

func (p *Provider) page(file string) (string, error) {
	if p.dir != "" {
		if data, err := os.ReadFile(filepath.Join(p.dir, file)); err == nil {
			return string(data), nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
	}
	data, err := builtin.ReadFile("pages/" + file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
