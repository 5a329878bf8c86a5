// Package theme provides the named CSS themes a page can be styled with.
// Themes make the page chrome injectable configuration instead of text baked
// into the generator.
package theme

import (
	"embed"
	"log/slog"
	"sort"
	"strings"

	"git.home.luguber.info/inful/mdpages/internal/logfields"
)

//go:embed assets/*.css
var assets embed.FS

// DefaultName is the theme used when none (or an unknown one) is configured.
const DefaultName = "default"

// Theme is a named stylesheet applied to every generated page.
type Theme struct {
	Name string
	CSS  string
}

var registry = map[string]Theme{}

func init() {
	entries, err := assets.ReadDir("assets")
	if err != nil {
		panic("theme: embedded assets missing: " + err.Error())
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".css")
		data, err := assets.ReadFile("assets/" + e.Name())
		if err != nil {
			panic("theme: read embedded asset: " + err.Error())
		}
		registry[name] = Theme{Name: name, CSS: string(data)}
	}
}

// Get returns the named theme, falling back to the default with a warning for
// unknown names.
func Get(name string) Theme {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = DefaultName
	}
	if t, ok := registry[normalized]; ok {
		return t
	}
	slog.Warn("Unknown theme, using default", logfields.Theme(name))
	return registry[DefaultName]
}

// Names lists the registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
