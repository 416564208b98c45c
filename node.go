package mongrel

import (
	"strings"

	"github.com/npillmayer/mongrel/style"
)

// Node is a markup element: a tag with attributes, inline styles and children.
//
// Nodes are values. All modifiers return a new node and leave the receiver
// unchanged, which makes it safe to use a partially configured node as a
// template and to share nodes between goroutines.
//
// A node with an empty tag is a fragment: it renders its children only.
type Node struct {
	tag      string
	attrs    Attributes
	children []Content // always flat
}

// New creates an element node for a tag, without attributes and children.
func New(tag string) Node {
	return Node{tag: tag}
}

// Fragment creates a node without an enclosing tag. When used as a child,
// a fragment is spliced into the child list of its parent, just like a Group.
// Attributes set on a fragment are ignored.
func Fragment(items ...Content) Node {
	return Node{}.WithChildren(items...)
}

// Tag returns the tag name of n, which may be empty for fragments.
func (n Node) Tag() string {
	return n.tag
}

// Attributes returns the attributes and inline styles of n.
func (n Node) Attributes() Attributes {
	return n.attrs
}

// Attribute returns the value for attribute key.
func (n Node) Attribute(key string) (string, bool) {
	return n.attrs.Get(key)
}

// Style returns the value for inline style property.
func (n Node) Style(property string) (string, bool) {
	return n.attrs.Style(property)
}

// Children returns a copy of the (flattened) children of n.
func (n Node) Children() []Content {
	ch := make([]Content, len(n.children))
	copy(ch, n.children)
	return ch
}

// WithAttribute returns a copy of n with attribute key set to value.
// An empty value denotes a boolean attribute (e.g., "disabled").
func (n Node) WithAttribute(key, value string) Node {
	n.attrs = n.attrs.Set(key, value)
	return n
}

// WithStyle returns a copy of n with inline style property set to value.
func (n Node) WithStyle(property, value string) Node {
	n.attrs = n.attrs.SetStyle(property, value)
	return n
}

// WithStyles returns a copy of n with all declarations of d added to the
// inline styles.
func (n Node) WithStyles(d style.Declarations) Node {
	n.attrs = n.attrs.WithStyles(d)
	return n
}

// WithChildren returns a copy of n, with its children replaced by items.
// Items are flattened (see Flatten).
func (n Node) WithChildren(items ...Content) Node {
	n.children = Flatten(items...)
	tracer().Debugf("node <%s> has %d children", n.tag, len(n.children))
	return n
}

// Build returns a copy of n, with its children replaced by the items
// collected by a builder function.
//
//     list := mongrel.New("ul").Build(func(b *mongrel.Builder) {
//         for _, s := range items {
//             b.Add(mongrel.New("li").WithChildren(mongrel.Text(s)))
//         }
//     })
//
func (n Node) Build(fn func(*Builder)) Node {
	return n.WithChildren(Build(fn))
}

// Render serializes n and all of its children.
func (n Node) Render() string {
	var b strings.Builder
	n.appendTo(&b)
	return b.String()
}

func (n Node) String() string {
	return n.Render()
}

func (n Node) appendTo(b *strings.Builder) {
	if n.tag == "" {
		appendSequence(b, n.children)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	n.attrs.appendTo(b)
	b.WriteByte('>')
	if len(n.children) == 0 && IsVoid(n.tag) {
		return
	}
	appendSequence(b, n.children)
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoid is true for tags of elements which never have content, e.g. "br".
// These are rendered without a closing tag.
func IsVoid(tag string) bool {
	return voidElements[tag]
}
