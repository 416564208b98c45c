/*
Package markupdbg implements helpers to debug markup content trees.

Dump prints a tree as indented text, ToGraphViz writes a diagram in
GraphViz (DOT) format, including the inline styles of element nodes,
partitioned into property groups.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markupdbg

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/mongrel"
)

// Dump returns a textual tree representation of c, e.g.
//
//     .
//     └── <div> class="box"
//         ├── "Hello" [b]
//         └── <br>
//
func Dump(c mongrel.Content) string {
	p := tp.New()
	for _, item := range mongrel.Flatten(c) {
		dump(p, item)
	}
	return p.String()
}

func dump(p tp.Tree, item mongrel.Content) {
	switch c := item.(type) {
	case mongrel.Node:
		label := nodeLabel(c)
		children := c.Children()
		if len(children) == 0 {
			p.AddNode(label)
			return
		}
		branch := p.AddBranch(label)
		for _, ch := range children {
			dump(branch, ch)
		}
	case mongrel.TextNode:
		p.AddNode(textLabel(c))
	case mongrel.Raw:
		p.AddMetaNode("raw", shortText(string(c), 30))
	default:
		p.AddMetaNode(fmt.Sprintf("%T", item), shortText(item.Render(), 30))
	}
}

func nodeLabel(n mongrel.Node) string {
	return "<" + n.Tag() + ">" + n.Attributes().String()
}

func textLabel(t mongrel.TextNode) string {
	label := fmt.Sprintf("%q", shortText(t.Value(), 30))
	if w := t.Wrappers(); len(w) > 0 {
		label += " [" + strings.Join(w, " ") + "]"
	}
	if a := t.Attributes(); !a.Empty() {
		label += a.String()
	}
	return label
}

func shortText(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max]) + "…"
	}
	return s
}
