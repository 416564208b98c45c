package markupdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/style"
)

// GraphParams are parameters for GraphViz drawing. The zero value is
// usable.
type GraphParams struct {
	Fontname    string   // font for labels, defaults to Helvetica
	StyleGroups []string // style property groups to include, see DefaultStyleGroups
}

// DefaultStyleGroups are the property groups drawn if GraphParams
// does not name any.
var DefaultStyleGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGDimension,
	style.PGColor,
}

type graphTemplates struct {
	head, node, text, edge, stylegroup, pgedge *template.Template
}

// ToGraphViz outputs a diagram for a content tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root of the content
// tree and a Writer.
// The diagram will include all inline styles belonging to one of the
// parameter groups. Shorthand properties are expanded before grouping,
// i.e. "margin" is shown as "margin-top" etc.
func ToGraphViz(c mongrel.Content, w io.Writer, params GraphParams) error {
	if params.Fontname == "" {
		params.Fontname = "Helvetica"
	}
	if params.StyleGroups == nil {
		params.StyleGroups = DefaultStyleGroups
	}
	g := &graphWriter{w: w, params: params}
	if err := g.init(); err != nil {
		return err
	}
	if err := g.tmpl.head.Execute(w, params); err != nil {
		return fmt.Errorf("cannot write graph head: %w", err)
	}
	for _, item := range mongrel.Flatten(c) {
		g.item(item)
	}
	if g.err != nil {
		return g.err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

type graphWriter struct {
	w      io.Writer
	params GraphParams
	tmpl   graphTemplates
	count  int
	err    error
}

func (g *graphWriter) init() (err error) {
	parse := func(name, text string) *template.Template {
		if err != nil {
			return nil
		}
		var t *template.Template
		t, err = template.New(name).Funcs(template.FuncMap{"dotstring": dotString}).Parse(text)
		return t
	}
	g.tmpl.head = parse("head", graphHeadTmpl)
	g.tmpl.node = parse("node", nodeTmpl)
	g.tmpl.text = parse("text", textTmpl)
	g.tmpl.edge = parse("edge", edgeTmpl)
	g.tmpl.stylegroup = parse("stylegroup", styleGroupTmpl)
	g.tmpl.pgedge = parse("pgedge", pgEdgeTmpl)
	return err
}

func (g *graphWriter) exec(t *template.Template, data interface{}) {
	if g.err != nil {
		return
	}
	if err := t.Execute(g.w, data); err != nil {
		g.err = fmt.Errorf("cannot write graph: %w", err)
	}
}

func (g *graphWriter) name(prefix string) string {
	g.count++
	return fmt.Sprintf("%s%05d", prefix, g.count)
}

type graphNode struct {
	Name  string
	Label string
}

type styleGroup struct {
	Name       string
	Group      string
	Properties []style.KeyValue
}

// item writes a node for a content item and returns its name.
func (g *graphWriter) item(item mongrel.Content) string {
	name := g.name("node")
	switch c := item.(type) {
	case mongrel.Node:
		g.exec(g.tmpl.node, graphNode{Name: name, Label: c.Tag()})
		g.styles(name, c.Attributes().Styles())
		for _, ch := range c.Children() {
			chname := g.item(ch)
			g.exec(g.tmpl.edge, []string{name, chname})
		}
	case mongrel.TextNode:
		g.exec(g.tmpl.text, graphNode{Name: name, Label: shortText(c.Render(), 20)})
		g.styles(name, c.Attributes().Styles())
	default:
		g.exec(g.tmpl.text, graphNode{Name: name, Label: shortText(item.Render(), 20)})
	}
	return name
}

func (g *graphWriter) styles(node string, decls style.Declarations) {
	if decls.Empty() {
		return
	}
	groups := decls.Longhand().Group()
	prev := node
	for _, pg := range g.params.StyleGroups {
		props, ok := groups[pg]
		if !ok {
			continue
		}
		sg := styleGroup{Name: g.name("pg"), Group: pg, Properties: props}
		g.exec(g.tmpl.stylegroup, sg)
		g.exec(g.tmpl.pgedge, []string{prev, sg.Name})
		prev = sg.Name
	}
}

func dotString(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return `"` + s + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=14] ;
  edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ dotstring .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const textTmpl = `{{ .Name }}	[ label={{ dotstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Group }}</font></td></tr>
      {{- range .Properties }}
      <tr><td align="right">{{ html .Key }}:</td><td>{{ html .Value }}</td></tr>
      {{- end }}
    </table>> ] ;
`

const edgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
