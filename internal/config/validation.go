package config

import (
	"strings"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

// Validate checks the complete configuration structure.
func Validate(cfg *Config) error {
	if cfg.Input == "" && cfg.Source == nil {
		return apperrors.ValidationFailed("input", "either input directory or source repository must be configured")
	}
	if cfg.Output == "" {
		return apperrors.ValidationFailed("output", "output directory cannot be empty")
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return apperrors.ValidationFailed("extension", "must start with a dot")
	}
	if cfg.Source != nil && cfg.Source.URL == "" {
		return apperrors.ValidationFailed("source.url", "source repository URL cannot be empty")
	}
	if cfg.History != nil && cfg.History.Path == "" {
		return apperrors.ValidationFailed("history.path", "history database path cannot be empty")
	}
	if cfg.Site.Mermaid.Enabled() && cfg.Site.Mermaid.ScriptURL == "" {
		return apperrors.ValidationFailed("site.mermaid.script_url", "script URL required when mermaid is enabled")
	}
	if _, err := cfg.Serve.RebuildInterval(); err != nil {
		return apperrors.ValidationFailed("serve.rebuild_every", err.Error())
	}
	return nil
}
