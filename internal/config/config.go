// Package config loads and validates the mdpages YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

// DefaultMermaidScriptURL is the CDN location of the Mermaid.js bundle
// injected into pages that may contain diagrams.
const DefaultMermaidScriptURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// Config is the top-level mdpages configuration.
type Config struct {
	Input     string         `yaml:"input"`
	Output    string         `yaml:"output"`
	Extension string         `yaml:"extension,omitempty"` // recognized source extension, default ".md"
	Site      SiteConfig     `yaml:"site,omitempty"`
	Source    *SourceConfig  `yaml:"source,omitempty"`
	History   *HistoryConfig `yaml:"history,omitempty"`
	Serve     ServeConfig    `yaml:"serve,omitempty"`
}

// SiteConfig controls page assembly and rendering.
type SiteConfig struct {
	Title          string        `yaml:"title,omitempty"` // appended to page titles when set
	Theme          string        `yaml:"theme,omitempty"` // named CSS theme, default "default"
	HighlightStyle string        `yaml:"highlight_style,omitempty"`
	UnsafeHTML     bool          `yaml:"unsafe_html,omitempty"` // pass raw HTML through the renderer
	Mermaid        MermaidConfig `yaml:"mermaid,omitempty"`
}

// MermaidConfig controls diagram script injection.
type MermaidConfig struct {
	Disabled  bool   `yaml:"disabled,omitempty"` // enabled by default
	ScriptURL string `yaml:"script_url,omitempty"`
}

// Enabled reports whether Mermaid support is on.
func (m MermaidConfig) Enabled() bool { return !m.Disabled }

// SourceConfig selects a git repository as the document source instead of a
// local input directory.
type SourceConfig struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch,omitempty"`
	Path   string `yaml:"path,omitempty"` // subdirectory within the clone
}

// HistoryConfig enables the sqlite build-history ledger.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// ServeConfig tunes the preview server.
type ServeConfig struct {
	Addr         string `yaml:"addr,omitempty"`
	Metrics      bool   `yaml:"metrics,omitempty"`       // expose /metrics on the preview server
	RebuildEvery string `yaml:"rebuild_every,omitempty"` // duration string, e.g. "30s"; empty disables
}

// RebuildInterval parses the periodic rebuild interval. Zero means disabled.
func (s ServeConfig) RebuildInterval() (time.Duration, error) {
	if s.RebuildEvery == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.RebuildEvery)
	if err != nil {
		return 0, fmt.Errorf("invalid rebuild_every %q: %w", s.RebuildEvery, err)
	}
	return d, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "."
	}
	if c.Output == "" {
		c.Output = "./site"
	}
	if c.Extension == "" {
		c.Extension = ".md"
	}
	if c.Site.Theme == "" {
		c.Site.Theme = "default"
	}
	if c.Site.HighlightStyle == "" {
		c.Site.HighlightStyle = "github"
	}
	if c.Site.Mermaid.ScriptURL == "" {
		c.Site.Mermaid.ScriptURL = DefaultMermaidScriptURL
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8080"
	}
	if c.Source != nil && c.Source.Branch == "" {
		c.Source.Branch = "main"
	}
}

// Load reads, defaults, and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ConfigNotFound(path)
		}
		return nil, apperrors.Wrap(err, apperrors.CategoryConfig, apperrors.SeverityFatal, "failed to read configuration")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CategoryConfig, apperrors.SeverityFatal, "failed to parse configuration")
	}

	cfg.applyDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when the file
// does not exist. Parse and validation errors still fail.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && apperrors.IsCategory(err, apperrors.CategoryConfig) {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return Default(), nil
		}
	}
	return cfg, err
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	example := Config{
		Input:     "./docs",
		Output:    "./site",
		Extension: ".md",
		Site: SiteConfig{
			Title:          "My Tutorial",
			Theme:          "default",
			HighlightStyle: "github",
			Mermaid: MermaidConfig{
				ScriptURL: DefaultMermaidScriptURL,
			},
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("marshal example configuration: %w", err)
	}
	// #nosec G306 -- configuration is not sensitive
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}
	return nil
}
