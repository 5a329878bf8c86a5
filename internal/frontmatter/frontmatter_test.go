package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNoFrontmatter(t *testing.T) {
	fm, body, had := Split([]byte("# Heading\n\nbody\n"))
	assert.False(t, had)
	assert.Nil(t, fm)
	assert.Equal(t, "# Heading\n\nbody\n", string(body))
}

func TestSplitWithFrontmatter(t *testing.T) {
	src := []byte("---\ntitle: Custom Title\n---\n# Heading\n")
	fm, body, had := Split(src)
	assert.True(t, had)
	assert.Equal(t, "title: Custom Title\n", string(fm))
	assert.Equal(t, "# Heading\n", string(body))

	fields, err := Parse(fm)
	require.NoError(t, err)
	title, ok := Title(fields)
	require.True(t, ok)
	assert.Equal(t, "Custom Title", title)
}

func TestSplitEmptyFrontmatter(t *testing.T) {
	fm, body, had := Split([]byte("---\n---\nbody\n"))
	assert.True(t, had)
	assert.Empty(t, fm)
	assert.Equal(t, "body\n", string(body))
}

func TestSplitLeadingThematicBreak(t *testing.T) {
	// A lone opening fence is a Markdown thematic break, not frontmatter.
	src := "---\n\n# Title\n\nbody\n"
	fm, body, had := Split([]byte(src))
	assert.False(t, had)
	assert.Nil(t, fm)
	assert.Equal(t, src, string(body))

	fm, body, had = Split([]byte("---\ntitle: looks like yaml\n"))
	assert.False(t, had)
	assert.Nil(t, fm)
	assert.Equal(t, "---\ntitle: looks like yaml\n", string(body))
}

func TestSplitCRLF(t *testing.T) {
	fm, body, had := Split([]byte("---\r\ntitle: T\r\n---\r\nbody\r\n"))
	assert.True(t, had)
	assert.Equal(t, "title: T\n", string(fm))
	assert.Equal(t, "body\n", string(body))
}

func TestTitleAbsentOrNonString(t *testing.T) {
	_, ok := Title(map[string]any{})
	assert.False(t, ok)
	_, ok = Title(map[string]any{"title": 42})
	assert.False(t, ok)
	_, ok = Title(map[string]any{"title": ""})
	assert.False(t, ok)
}
