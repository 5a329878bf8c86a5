package site

import (
	"bytes"
	"fmt"
	"html/template"
)

// mermaidInit mirrors the initialization the tutorial pages have always
// shipped: explicit sizing so large flowcharts and sequence diagrams are not
// squeezed into the column width.
const mermaidInit = template.JS(`document.addEventListener('DOMContentLoaded', function() {
    mermaid.initialize({
        startOnLoad: true,
        theme: 'default',
        securityLevel: 'loose',
        flowchart: {
            useMaxWidth: false,
            htmlLabels: true
        },
        sequence: {
            useMaxWidth: false,
            htmlLabels: true,
            diagramMarginX: 50,
            diagramMarginY: 10,
            boxMargin: 10
        }
    });
});`)

const pageTemplateText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
{{.CSS}}</style>
{{- if .Mermaid}}
<script src="{{.MermaidScriptURL}}"></script>
<script>
{{.MermaidInit}}
</script>
{{- end}}
</head>
<body>
{{template "nav" .Nav}}
{{.Content}}
{{template "nav" .Nav}}
</body>
</html>
{{define "nav"}}<div class="navigation">
{{- if .Prev}}
<a class="nav-link" href="{{.Prev}}">&larr; Previous</a>
{{- end}}
{{- if .Index}}
<a class="nav-link" href="{{.Index}}">Index</a>
{{- end}}
{{- if .Next}}
<a class="nav-link" href="{{.Next}}">Next &rarr;</a>
{{- end}}
</div>{{end}}`

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

type navData struct {
	Prev  string
	Index string
	Next  string
}

type pageData struct {
	Title            string
	CSS              template.CSS
	Mermaid          bool
	MermaidScriptURL string
	MermaidInit      template.JS
	Nav              navData
	Content          template.HTML
}

// assemble wraps a rendered fragment in the page shell: head, theme CSS,
// optional Mermaid scripts, and the navigation bar above and below the body.
func (g *Generator) assemble(p *Page) ([]byte, error) {
	title := p.Title
	if g.cfg.Site.Title != "" {
		title = fmt.Sprintf("%s - %s", p.Title, g.cfg.Site.Title)
	}

	nav := navData{}
	if p.Nav.Prev != nil {
		nav.Prev = p.Nav.Prev.Name + ".html"
	}
	if p.Nav.Index != nil {
		nav.Index = p.Nav.Index.Name + ".html"
	}
	if p.Nav.Next != nil {
		nav.Next = p.Nav.Next.Name + ".html"
	}

	data := pageData{
		Title:            title,
		CSS:              template.CSS(g.theme.CSS),
		Mermaid:          g.cfg.Site.Mermaid.Enabled(),
		MermaidScriptURL: g.cfg.Site.Mermaid.ScriptURL,
		MermaidInit:      mermaidInit,
		Nav:              nav,
		Content:          template.HTML(p.Fragment), // #nosec G203 -- fragment comes from the trusted renderer
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("assemble page %s: %w", p.OutputName, err)
	}
	return buf.Bytes(), nil
}
