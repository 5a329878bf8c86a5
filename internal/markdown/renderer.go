// Package markdown renders Markdown source into HTML fragments and applies
// the light source/fragment rewrites the site pipeline needs (relative link
// retargeting, Mermaid block wrapping).
package markdown

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Renderer is the pluggable rendering collaborator: it turns a Markdown body
// into an HTML fragment. Implementations must be safe for reuse across pages.
type Renderer interface {
	Render(ctx context.Context, source []byte) ([]byte, error)
}

// Options tunes the built-in Goldmark renderer.
type Options struct {
	HighlightStyle string // chroma style name, default "github"
	UnsafeHTML     bool   // pass raw HTML blocks through to output
}

// GoldmarkRenderer converts Markdown to HTML using Goldmark with GFM,
// auto heading IDs, chroma syntax highlighting, and Mermaid fence wrapping.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates the default renderer.
func NewGoldmarkRenderer(opts Options) *GoldmarkRenderer {
	style := opts.HighlightStyle
	if style == "" {
		style = "github"
	}

	rendererOpts := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(mermaidHTMLRenderer{}, 100)),
	}
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(mermaidTransformer{}, 100)),
		),
		goldmark.WithRendererOptions(rendererOpts...),
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
			),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts Markdown source to an HTML fragment. Relative links to
// other Markdown documents are retargeted to their .html counterparts before
// rendering.
func (r *GoldmarkRenderer) Render(ctx context.Context, source []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := r.md.Parser().Parse(text.NewReader(source))
	rewriteRelativeLinks(doc, source)

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("goldmark render: %w", err)
	}
	return buf.Bytes(), nil
}

