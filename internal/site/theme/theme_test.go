package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKnownThemes(t *testing.T) {
	for _, name := range []string{"default", "slate"} {
		th := Get(name)
		assert.Equal(t, name, th.Name)
		assert.Contains(t, th.CSS, ".navigation")
		assert.Contains(t, th.CSS, ".mermaid")
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	th := Get("no-such-theme")
	assert.Equal(t, DefaultName, th.Name)

	th = Get("")
	assert.Equal(t, DefaultName, th.Name)

	th = Get("  Slate ")
	assert.Equal(t, "slate", th.Name)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"default", "slate"}, names)
}
