// Package frontmatter splits optional YAML frontmatter from Markdown bodies.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var delim = []byte("---\n")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter fence, had is false and
// body is the full input. A leading `---` with no closing fence is a Markdown
// thematic break, not frontmatter, and is returned as body unchanged. CRLF
// input is normalized to LF before splitting.
func Split(content []byte) (fm []byte, body []byte, had bool) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, delim) {
		return nil, content, false
	}

	rest := content[len(delim):]
	if bytes.HasPrefix(rest, delim) {
		return []byte{}, rest[len(delim):], true
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// A trailing fence with no final newline still closes the block.
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")+1], []byte{}, true
		}
		return nil, content, false
	}

	return rest[:idx+1], rest[idx+len(closeSeq):], true
}

// Parse decodes frontmatter YAML into a generic field map.
func Parse(fm []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(fm)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Title extracts a non-empty string `title` field, if present.
func Title(fields map[string]any) (string, bool) {
	v, ok := fields["title"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
