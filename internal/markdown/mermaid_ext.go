package markdown

import (
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const mermaidLanguage = "mermaid"

var kindMermaidBlock = gmast.NewNodeKind("MermaidBlock")

// mermaidBlock is a fenced mermaid diagram lifted out of the code-block path
// so the syntax highlighter never touches it.
type mermaidBlock struct {
	gmast.BaseBlock
}

func (*mermaidBlock) Kind() gmast.NodeKind { return kindMermaidBlock }

func (b *mermaidBlock) Dump(source []byte, level int) {
	gmast.DumpHelper(b, source, level, nil, nil)
}

// mermaidTransformer replaces ```mermaid fences with mermaidBlock nodes after parsing.
type mermaidTransformer struct{}

func (mermaidTransformer) Transform(doc *gmast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var fences []*gmast.FencedCodeBlock
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if fcb, ok := n.(*gmast.FencedCodeBlock); ok && string(fcb.Language(source)) == mermaidLanguage {
			fences = append(fences, fcb)
		}
		return gmast.WalkContinue, nil
	})

	for _, fcb := range fences {
		block := &mermaidBlock{}
		block.SetLines(fcb.Lines())
		parent := fcb.Parent()
		parent.ReplaceChild(parent, fcb, block)
	}
}

// mermaidHTMLRenderer emits `<div class="mermaid">` elements Mermaid.js can
// hydrate. The payload is entity-escaped; browsers decode it back when reading
// the element's text content.
type mermaidHTMLRenderer struct{}

func (r mermaidHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindMermaidBlock, r.render)
}

func (mermaidHTMLRenderer) render(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(`<div class="mermaid">` + "\n")
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			_, _ = w.Write(util.EscapeHTML(seg.Value(source)))
		}
		return gmast.WalkContinue, nil
	}
	_, _ = w.WriteString("</div>\n")
	return gmast.WalkContinue, nil
}
