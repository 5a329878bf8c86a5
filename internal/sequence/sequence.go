// Package sequence computes the canonical page order for a set of source
// documents and derives the per-page title and navigation metadata.
//
// The ordering rule: the index document (if present) always sorts first;
// remaining documents sort by a numeric filename prefix when both sides have
// one, falling back to plain lexicographic comparison. A leading numeric
// token only counts as a prefix when it is followed by an underscore.
package sequence

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "git.home.luguber.info/inful/mdpages/internal/errors"
)

// IndexName is the base name (without extension) of the designated index document.
const IndexName = "index"

// IndexTitle is the fixed display title for the index document.
const IndexTitle = "Tutorial Index"

// Document is a single source file positioned in the page sequence.
type Document struct {
	FileName string // full source filename, e.g. "03_building_blocks.md"
	Name     string // base name without extension
	Title    string // derived display title
	IsIndex  bool
}

// Navigation is the previous/index/next reference triple for one position in
// the sequence. A nil field means the link is absent.
type Navigation struct {
	Prev  *Document
	Index *Document
	Next  *Document
}

var titleCaser = cases.Title(language.English)

// BuildSequence orders the recognized source files into the canonical page
// sequence. Files whose extension does not match ext, empty names, and names
// without any extension are excluded. Two files that resolve to the same base
// name (exact duplicates, or names differing only in extension case) would
// write the same output page, so they are a validation error.
func BuildSequence(fileNames []string, ext string) ([]Document, error) {
	seenNames := make(map[string]struct{}, len(fileNames))
	var index *Document
	others := make([]Document, 0, len(fileNames))

	for _, fn := range fileNames {
		if fn == "" {
			continue
		}
		fileExt := filepath.Ext(fn)
		if fileExt == "" || !strings.EqualFold(fileExt, ext) {
			continue
		}
		name := strings.TrimSuffix(fn, fileExt)
		if name == "" {
			continue
		}
		if _, dup := seenNames[name]; dup {
			return nil, apperrors.ValidationFailed("fileNames", "duplicate page name: "+name)
		}
		seenNames[name] = struct{}{}

		doc := Document{FileName: fn, Name: name, IsIndex: name == IndexName}
		doc.Title = DeriveTitle(fn, doc.IsIndex)
		if doc.IsIndex {
			d := doc
			index = &d
			continue
		}
		others = append(others, doc)
	}

	sort.Slice(others, func(i, j int) bool {
		return lessDocuments(others[i].Name, others[j].Name)
	})

	seq := make([]Document, 0, len(others)+1)
	if index != nil {
		seq = append(seq, *index)
	}
	seq = append(seq, others...)
	return seq, nil
}

// lessDocuments orders two base names: numeric prefix compare when both sides
// carry one, lexicographic otherwise. Equal prefixes tie-break on the full name
// so the order is total and stable across runs.
func lessDocuments(a, b string) bool {
	na, aok := numericPrefix(a)
	nb, bok := numericPrefix(b)
	if aok && bok && na != nb {
		return na < nb
	}
	return a < b
}

// numericPrefix extracts the leading numeric token of a base name. The token
// must consist solely of digits and be terminated by an underscore.
func numericPrefix(name string) (int, bool) {
	idx := strings.IndexByte(name, '_')
	if idx <= 0 {
		return 0, false
	}
	token := name[:idx]
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DeriveTitle computes the display title for a source filename. The index
// document gets the fixed IndexTitle; other documents drop the numeric prefix
// segment, turn underscores into spaces, and are title-cased.
func DeriveTitle(fileName string, isIndex bool) string {
	if isIndex {
		return IndexTitle
	}
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if _, ok := numericPrefix(name); ok {
		name = name[strings.IndexByte(name, '_')+1:]
	}
	name = strings.ReplaceAll(name, "_", " ")
	return titleCaser.String(name)
}

// ComputeNavigation returns the navigation links for the document at the given
// position. Pure function of (sequence, position); position must be in range.
func ComputeNavigation(seq []Document, position int) Navigation {
	var nav Navigation
	if position > 0 {
		nav.Prev = &seq[position-1]
	}
	if position < len(seq)-1 {
		nav.Next = &seq[position+1]
	}
	if !seq[position].IsIndex {
		for i := range seq {
			if seq[i].IsIndex {
				nav.Index = &seq[i]
				break
			}
		}
	}
	return nav
}
