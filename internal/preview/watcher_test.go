package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnoreEvent(t *testing.T) {
	ignored := []string{
		"/tmp/.hidden.md",
		"/tmp/#foo#",
		"/tmp/foo.swp",
		"/tmp/foo.swx",
		"/tmp/foo~",
		"/tmp/.#lock",
		"/tmp/.DS_Store",
		"/tmp/Thumbs.db",
	}
	for _, p := range ignored {
		assert.True(t, shouldIgnoreEvent(p), "expected %s to be ignored", p)
	}

	watched := []string{
		"/tmp/visible.md",
		"/tmp/01_intro.md",
		"/tmp/index.md",
	}
	for _, p := range watched {
		assert.False(t, shouldIgnoreEvent(p), "expected %s to trigger rebuild", p)
	}
}
