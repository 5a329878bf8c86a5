package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewGoldmarkRenderer(Options{})
	out, err := r.Render(context.Background(), []byte("# Heading\n\nSome *emphasis* here.\n"))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "<h1 id=\"heading\">Heading</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
}

func TestRenderGFMTable(t *testing.T) {
	r := NewGoldmarkRenderer(Options{})
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out, err := r.Render(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table>")
}

func TestRenderMermaidFence(t *testing.T) {
	r := NewGoldmarkRenderer(Options{})
	src := "```mermaid\ngraph TD\nA --> B\n```\n"
	out, err := r.Render(context.Background(), []byte(src))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<div class="mermaid">`)
	assert.NotContains(t, html, "language-mermaid")
}

func TestRenderRewritesRelativeMarkdownLinks(t *testing.T) {
	r := NewGoldmarkRenderer(Options{})
	src := "[next](2_setup.md) and [ext](https://example.com/doc.md)\n"
	out, err := r.Render(context.Background(), []byte(src))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `href="2_setup.html"`)
	assert.Contains(t, html, `href="https://example.com/doc.md"`)
}

func TestRenderCanceledContext(t *testing.T) {
	r := NewGoldmarkRenderer(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Render(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRewriteMarkdownHref(t *testing.T) {
	tests := []struct {
		dest string
		want string
		ok   bool
	}{
		{"2_setup.md", "2_setup.html", true},
		{"2_setup.md#section", "2_setup.html#section", true},
		{"dir/page.MD", "dir/page.html", true},
		{"https://example.com/x.md", "", false},
		{"mailto:a@b.c", "", false},
		{"image.png", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := RewriteMarkdownHref(tt.dest)
		assert.Equal(t, tt.ok, ok, tt.dest)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.dest)
		}
	}
}

func TestRewriteMermaidBlocks(t *testing.T) {
	in := []byte(`<pre><code class="language-mermaid">graph TD
A --&gt; B
</code></pre>`)
	out := string(RewriteMermaidBlocks(in))
	assert.Contains(t, out, `<div class="mermaid">`)
	assert.Contains(t, out, "A --> B")
	assert.NotContains(t, out, "<pre>")
}

func TestRewriteMermaidBlocksLeavesOtherCode(t *testing.T) {
	in := []byte(`<pre><code class="language-go">fmt.Println()</code></pre>`)
	out := string(RewriteMermaidBlocks(in))
	assert.Equal(t, string(in), out)
}
