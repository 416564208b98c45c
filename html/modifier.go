package html

import (
	"strings"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/attr"
	"github.com/npillmayer/mongrel/css"
	"github.com/npillmayer/mongrel/style"
)

// Modifier is a function which derives a changed node from a node.
type Modifier func(mongrel.Node) mongrel.Node

// Apply applies modifiers to n, in order. nil modifiers are skipped.
func Apply(n mongrel.Node, mods ...Modifier) mongrel.Node {
	for _, m := range mods {
		if m != nil {
			n = m(n)
		}
	}
	return n
}

// When returns m if cond is true, nil otherwise.
func When(cond bool, m Modifier) Modifier {
	if cond {
		return m
	}
	return nil
}

// Children replaces the children of a node.
func Children(items ...mongrel.Content) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.WithChildren(items...)
	}
}

// Build replaces the children of a node by the items collected by fn.
func Build(fn func(*mongrel.Builder)) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.Build(fn)
	}
}

// --- Attributes ------------------------------------------------------------

// Attr sets an attribute.
func Attr(name attr.Name, value string) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.WithAttribute(name.String(), value)
	}
}

// Boolean sets a presence-only attribute, e.g. "disabled".
func Boolean(name attr.Name) Modifier {
	return Attr(name, "")
}

// Data sets a custom data attribute "data-<suffix>".
func Data(suffix, value string) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.WithAttribute(attr.Data(suffix), value)
	}
}

// ID sets attribute "id".
func ID(id string) Modifier {
	return Attr(attr.ID, id)
}

// Class adds CSS classes to attribute "class". Classes already present are
// not repeated.
func Class(classes ...string) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		current, _ := n.Attribute(attr.Class.String())
		list := strings.Fields(current)
		for _, c := range classes {
			for _, f := range strings.Fields(c) {
				if !contains(list, f) {
					list = append(list, f)
				}
			}
		}
		if len(list) == 0 {
			return n
		}
		return n.WithAttribute(attr.Class.String(), strings.Join(list, " "))
	}
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Href sets attribute "href".
func Href(url string) Modifier {
	return Attr(attr.Href, url)
}

// Target sets attribute "target".
func Target(target string) Modifier {
	return Attr(attr.Target, target)
}

// Src sets attribute "src".
func Src(url string) Modifier {
	return Attr(attr.Src, url)
}

// Alt sets attribute "alt".
func Alt(text string) Modifier {
	return Attr(attr.Alt, text)
}

// Type sets attribute "type".
func Type(t string) Modifier {
	return Attr(attr.Type, t)
}

// Name sets attribute "name".
func Name(name string) Modifier {
	return Attr(attr.NameAttr, name)
}

// Value sets attribute "value".
func Value(v string) Modifier {
	return Attr(attr.Value, v)
}

// Rel sets attribute "rel".
func Rel(rel string) Modifier {
	return Attr(attr.Rel, rel)
}

// --- Styles ----------------------------------------------------------------

// Style sets an inline style property.
func Style(name style.Name, value string) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.WithStyle(name.String(), value)
	}
}

// Dimen sets an inline style property to a CSS dimension. Unset dimensions
// are ignored.
func Dimen(name style.Name, d css.DimenT) Modifier {
	if d.IsNone() {
		return nil
	}
	return Style(name, d.String())
}

// Styles adds a set of declarations to the inline styles.
func Styles(d style.Declarations) Modifier {
	return func(n mongrel.Node) mongrel.Node {
		return n.WithStyles(d)
	}
}

// Position sets the position property and the offsets of p.
func Position(p css.PositionT) Modifier {
	return Styles(p.Declarations())
}

// Display sets the display property.
func Display(mode css.DisplayMode) Modifier {
	p := mode.Property()
	if p.IsEmpty() {
		return nil
	}
	return Style(style.Display, p.String())
}
