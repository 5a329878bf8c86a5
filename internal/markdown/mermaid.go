package markdown

import (
	"html"
	"regexp"
	"strings"
)

// mermaidBlockPattern matches fenced mermaid blocks as emitted by renderers
// that do not special-case them (plain `<pre><code class="language-mermaid">`).
var mermaidBlockPattern = regexp.MustCompile(`(?s)<pre><code class="language-mermaid">(.*?)</code></pre>`)

// RewriteMermaidBlocks converts mermaid code blocks in a rendered HTML
// fragment into `<div class="mermaid">` elements, decoding HTML entities in
// the diagram payload. Fragments from the built-in renderer already carry the
// div form; the rewrite is a no-op for them.
func RewriteMermaidBlocks(fragment []byte) []byte {
	return mermaidBlockPattern.ReplaceAllFunc(fragment, func(block []byte) []byte {
		m := mermaidBlockPattern.FindSubmatch(block)
		payload := html.UnescapeString(string(m[1]))
		var b strings.Builder
		b.WriteString(`<div class="mermaid">` + "\n")
		b.WriteString(payload)
		if !strings.HasSuffix(payload, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString("</div>")
		return []byte(b.String())
	})
}
