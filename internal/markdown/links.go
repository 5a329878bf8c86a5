package markdown

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// rewriteRelativeLinks retargets relative links pointing at Markdown documents
// to their corresponding .html output names, preserving any fragment. Absolute
// URLs and links with a scheme are left untouched.
func rewriteRelativeLinks(root gmast.Node, source []byte) {
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		link, ok := n.(*gmast.Link)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if rewritten, ok := RewriteMarkdownHref(string(link.Destination)); ok {
			link.Destination = []byte(rewritten)
		}
		return gmast.WalkContinue, nil
	})
}

// RewriteMarkdownHref maps a relative `.md` destination to `.html`. The second
// return is false when the destination is external or not a Markdown link.
func RewriteMarkdownHref(dest string) (string, bool) {
	if dest == "" || strings.Contains(dest, "://") || strings.HasPrefix(dest, "//") || strings.HasPrefix(dest, "mailto:") {
		return "", false
	}

	path := dest
	fragment := ""
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		path = dest[:i]
		fragment = dest[i:]
	}
	if !strings.HasSuffix(strings.ToLower(path), ".md") {
		return "", false
	}
	return path[:len(path)-len(".md")] + ".html" + fragment, true
}
