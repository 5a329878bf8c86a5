package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: ./docs\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs", cfg.Input)
	assert.Equal(t, "./site", cfg.Output)
	assert.Equal(t, ".md", cfg.Extension)
	assert.Equal(t, "default", cfg.Site.Theme)
	assert.Equal(t, "github", cfg.Site.HighlightStyle)
	assert.True(t, cfg.Site.Mermaid.Enabled())
	assert.Equal(t, DefaultMermaidScriptURL, cfg.Site.Mermaid.ScriptURL)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryConfig))
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Input)
}

func TestLoadInvalidExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: ./docs\nextension: md\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryValidation))
}

func TestLoadSourceRequiresURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source:\n  branch: main\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryValidation))
}

func TestRebuildInterval(t *testing.T) {
	cfg := Default()
	d, err := cfg.Serve.RebuildInterval()
	require.NoError(t, err)
	assert.Zero(t, d)

	cfg.Serve.RebuildEvery = "45s"
	d, err = cfg.Serve.RebuildInterval()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, d)

	cfg.Serve.RebuildEvery = "bogus"
	_, err = cfg.Serve.RebuildInterval()
	assert.Error(t, err)
}

func TestInitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))

	// Refuses to overwrite without force.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs", cfg.Input)
	assert.Equal(t, "My Tutorial", cfg.Site.Title)
}
