// Package linkverify checks that relative links inside generated pages
// resolve to files that were actually written.
package linkverify

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

// Issue is a link whose target does not exist in the output directory.
type Issue struct {
	Page string // page the link appears on
	Href string // the broken destination
}

// VerifyDir scans every .html file in dir and reports relative links whose
// targets are missing. External links, anchors, and absolute paths are not
// checked.
func VerifyDir(dir string) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.InputDirError(dir, err)
	}

	var issues []Issue
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		refs, err := extractRefs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		for _, ref := range refs {
			target := ref
			if i := strings.IndexAny(target, "#?"); i >= 0 {
				target = target[:i]
			}
			if target == "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target))); err != nil {
				issues = append(issues, Issue{Page: entry.Name(), Href: ref})
			}
		}
	}
	return issues, nil
}

// extractRefs parses one HTML file and collects checkable relative references.
func extractRefs(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CategoryFileSystem, apperrors.SeverityError, "failed to open page")
	}
	defer func() { _ = file.Close() }()
	return extractRefsFromReader(file)
}

func extractRefsFromReader(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CategoryValidation, apperrors.SeverityError, "failed to parse page")
	}

	var refs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			attr := ""
			switch n.Data {
			case "a", "link":
				attr = "href"
			case "img", "script":
				attr = "src"
			}
			if attr != "" {
				if ref := getAttr(n, attr); isRelative(ref) {
					refs = append(refs, ref)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, nil
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isRelative(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return false
	}
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "mailto:") || strings.HasPrefix(ref, "data:") {
		return false
	}
	return true
}
