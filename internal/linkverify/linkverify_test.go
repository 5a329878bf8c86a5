package linkverify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestVerifyDirAllLinksResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<html><body><a href="1_intro.html">Intro</a></body></html>`)
	writeFile(t, dir, "1_intro.html", `<html><body><a href="index.html">Index</a><a href="index.html#top">Top</a></body></html>`)

	issues, err := VerifyDir(dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestVerifyDirReportsBrokenLink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<html><body><a href="missing.html">Gone</a></body></html>`)

	issues, err := VerifyDir(dir)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "index.html", issues[0].Page)
	assert.Equal(t, "missing.html", issues[0].Href)
}

func TestVerifyDirIgnoresExternalAndAnchors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `<html><body>
<a href="https://example.com/x.html">ext</a>
<a href="#section">anchor</a>
<a href="mailto:a@b.c">mail</a>
<script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
</body></html>`)

	issues, err := VerifyDir(dir)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
