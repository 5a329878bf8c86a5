package site

import (
	"git.home.luguber.info/inful/mdpages/internal/sequence"
)

// Page is a fully processed document ready for assembly and writing.
type Page struct {
	Doc        sequence.Document
	Title      string // final display title (frontmatter may override the derived one)
	Fragment   []byte // rendered HTML body
	Nav        sequence.Navigation
	OutputName string // output filename, source name with .html extension
}
