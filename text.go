package mongrel

import (
	"fmt"
	"strconv"
	"strings"
)

// TextNode is a piece of literal text, optionally wrapped by a stack of tags
// such as <b> or <a>. Text is escaped when rendered.
//
// Like Node, TextNode is a value type: wrapper methods return a modified copy.
// The first wrapper applied ends up as the outermost tag:
//
//     Text("x").Bold().Italic()      // <b><i>x</i></b>
//     Text("x").Italic().Bold()      // <i><b>x</b></i>
//
// Attributes and styles set on the text node itself go to the outermost tag.
// If there are no wrappers, a <span> is created to carry them.
type TextNode struct {
	text     string
	wrappers []wrapper
	attrs    Attributes
}

type wrapper struct {
	tag   string
	attrs Attributes
}

// InlineTag is the tag synthesized for text nodes which carry attributes or
// styles, but no wrapper.
const InlineTag = "span"

// Text creates a text node.
func Text(s string) TextNode {
	return TextNode{text: s}
}

// Textf creates a text node from a format string, as with fmt.Sprintf.
func Textf(format string, args ...interface{}) TextNode {
	return TextNode{text: fmt.Sprintf(format, args...)}
}

// Value returns the unescaped text.
func (t TextNode) Value() string {
	return t.text
}

// Wrappers returns the wrapper tags of t, outermost first.
func (t TextNode) Wrappers() []string {
	tags := make([]string, len(t.wrappers))
	for i, w := range t.wrappers {
		tags[i] = w.tag
	}
	return tags
}

// Attributes returns the attributes and styles set on t itself.
func (t TextNode) Attributes() Attributes {
	return t.attrs
}

// Wrap returns a copy of t, wrapped in an additional tag with attributes.
// Attributes with an empty key are ignored.
func (t TextNode) Wrap(tag string, attrs ...Attr) TextNode {
	var a Attributes
	for _, attr := range attrs {
		if attr.Key == "" {
			continue
		}
		a = a.Set(attr.Key, attr.Value)
	}
	w := make([]wrapper, len(t.wrappers), len(t.wrappers)+1)
	copy(w, t.wrappers)
	t.wrappers = append(w, wrapper{tag: tag, attrs: a})
	return t
}

// WithAttribute returns a copy of t with attribute key set to value.
// The attribute will be placed at the outermost tag.
func (t TextNode) WithAttribute(key, value string) TextNode {
	t.attrs = t.attrs.Set(key, value)
	return t
}

// WithStyle returns a copy of t with inline style property set to value.
// The style will be placed at the outermost tag.
func (t TextNode) WithStyle(property, value string) TextNode {
	t.attrs = t.attrs.SetStyle(property, value)
	return t
}

// Render escapes the text and applies the wrappers.
func (t TextNode) Render() string {
	escaped := Escape(t.text)
	if len(t.wrappers) == 0 {
		if t.attrs.Empty() {
			return escaped
		}
		return wrapIn(InlineTag, t.attrs, escaped)
	}
	// innermost wrapper is the last one added, so we start from the end
	s := escaped
	for i := len(t.wrappers) - 1; i >= 0; i-- {
		w := t.wrappers[i]
		attrs := w.attrs
		if i == 0 {
			attrs = attrs.Merge(t.attrs)
		}
		s = wrapIn(w.tag, attrs, s)
	}
	return s
}

func (t TextNode) String() string {
	return t.Render()
}

func wrapIn(tag string, attrs Attributes, inner string) string {
	var b strings.Builder
	b.Grow(2*len(tag) + len(inner) + 5)
	b.WriteByte('<')
	b.WriteString(tag)
	attrs.appendTo(&b)
	b.WriteByte('>')
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return b.String()
}

// --- Formatting wrappers ---------------------------------------------------

// Bold wraps t in <b>.
func (t TextNode) Bold() TextNode { return t.Wrap("b") }

// Italic wraps t in <i>.
func (t TextNode) Italic() TextNode { return t.Wrap("i") }

// Underline wraps t in <u>.
func (t TextNode) Underline() TextNode { return t.Wrap("u") }

// Strikethrough wraps t in <s>.
func (t TextNode) Strikethrough() TextNode { return t.Wrap("s") }

// Emphasis wraps t in <em>.
func (t TextNode) Emphasis() TextNode { return t.Wrap("em") }

// Strong wraps t in <strong>.
func (t TextNode) Strong() TextNode { return t.Wrap("strong") }

// Code wraps t in <code>.
func (t TextNode) Code() TextNode { return t.Wrap("code") }

// Small wraps t in <small>.
func (t TextNode) Small() TextNode { return t.Wrap("small") }

// Mark wraps t in <mark>.
func (t TextNode) Mark() TextNode { return t.Wrap("mark") }

// Subscript wraps t in <sub>.
func (t TextNode) Subscript() TextNode { return t.Wrap("sub") }

// Superscript wraps t in <sup>.
func (t TextNode) Superscript() TextNode { return t.Wrap("sup") }

// Deleted wraps t in <del>.
func (t TextNode) Deleted() TextNode { return t.Wrap("del") }

// Inserted wraps t in <ins>.
func (t TextNode) Inserted() TextNode { return t.Wrap("ins") }

// Keyboard wraps t in <kbd>.
func (t TextNode) Keyboard() TextNode { return t.Wrap("kbd") }

// Paragraph wraps t in <p>.
func (t TextNode) Paragraph() TextNode { return t.Wrap("p") }

// Heading wraps t in a heading tag <h1>…<h6>. Levels outside of 1…6 are
// clamped.
func (t TextNode) Heading(level int) TextNode {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return t.Wrap("h" + strconv.Itoa(level))
}

// Abbreviation wraps t in <abbr>, with title being the expansion.
func (t TextNode) Abbreviation(title string) TextNode {
	return t.Wrap("abbr", Attr{"title", title})
}

// Link wraps t in an anchor <a href=…>. An optional target (e.g., "_blank")
// may be given.
func (t TextNode) Link(href string, target ...string) TextNode {
	if len(target) > 0 && target[0] != "" {
		return t.Wrap("a", Attr{"href", href}, Attr{"target", target[0]})
	}
	return t.Wrap("a", Attr{"href", href})
}

// Quote wraps t in an inline quotation <q>. cite may be empty.
func (t TextNode) Quote(cite string) TextNode {
	if cite == "" {
		return t.Wrap("q")
	}
	return t.Wrap("q", Attr{"cite", cite})
}
