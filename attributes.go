package mongrel

import (
	"sort"
	"strings"

	"github.com/npillmayer/mongrel/style"
)

// Attr is a key-value pair for an attribute. An empty value denotes
// a boolean attribute, which is rendered by its key only.
type Attr struct {
	Key   string
	Value string
}

// Attributes holds the attributes and inline styles of an element.
// The zero value is an empty set, ready to use.
//
// Attributes are immutable: Set and SetStyle return modified copies.
type Attributes struct {
	attrs  map[string]string
	styles style.Declarations
}

// Set returns a copy of a with attribute key set to value. An empty value
// makes key a presence-only attribute, e.g.
//
//     a.Set("disabled", "")   // renders as ' disabled'
//
func (a Attributes) Set(key, value string) Attributes {
	attrs := make(map[string]string, len(a.attrs)+1)
	for k, v := range a.attrs {
		attrs[k] = v
	}
	attrs[key] = value
	return Attributes{attrs: attrs, styles: a.styles}
}

// SetStyle returns a copy of a with inline style property set to value.
func (a Attributes) SetStyle(property, value string) Attributes {
	return Attributes{
		attrs:  a.attrs,
		styles: a.styles.With(property, style.Property(value)),
	}
}

// WithStyles returns a copy of a with all declarations of d added to
// the inline styles.
func (a Attributes) WithStyles(d style.Declarations) Attributes {
	return Attributes{
		attrs:  a.attrs,
		styles: a.styles.Merge(d),
	}
}

// Get returns the value of attribute key.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.attrs[key]
	return v, ok
}

// Style returns the value of inline style property.
func (a Attributes) Style(property string) (string, bool) {
	p, ok := a.styles.Get(property)
	return p.String(), ok
}

// Styles returns the inline style declarations.
func (a Attributes) Styles() style.Declarations {
	return a.styles
}

// Keys returns the attribute keys in lexical order. The inline styles are not
// included.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a.attrs))
	for k := range a.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of attributes, not counting inline styles.
func (a Attributes) Len() int {
	return len(a.attrs)
}

// Empty is true if a neither holds attributes nor styles.
func (a Attributes) Empty() bool {
	return len(a.attrs) == 0 && a.styles.Empty()
}

// Merge returns a copy of a, overlayed with attributes and styles from other.
// Values from other win.
func (a Attributes) Merge(other Attributes) Attributes {
	if other.Empty() {
		return a
	}
	if a.Empty() {
		return other
	}
	attrs := make(map[string]string, len(a.attrs)+len(other.attrs))
	for k, v := range a.attrs {
		attrs[k] = v
	}
	for k, v := range other.attrs {
		attrs[k] = v
	}
	return Attributes{attrs: attrs, styles: a.styles.Merge(other.styles)}
}

// String serializes a for use within an opening tag. An empty set results in
// the empty string. Otherwise the result starts with a single space, followed
// by the style attribute (if styles are present), followed by the attributes
// in lexical order:
//
//     ` style="color: red; margin: 0" class="x" disabled`
//
// If inline styles are present, an attribute with key "style" is ignored.
func (a Attributes) String() string {
	if a.Empty() {
		return ""
	}
	var b strings.Builder
	a.appendTo(&b)
	return b.String()
}

func (a Attributes) appendTo(b *strings.Builder) {
	hasStyles := !a.styles.Empty()
	if hasStyles {
		b.WriteString(` style="`)
		b.WriteString(Escape(a.styles.Inline()))
		b.WriteByte('"')
	}
	for _, k := range a.Keys() {
		if hasStyles && k == "style" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		if v := a.attrs[k]; v != "" {
			b.WriteString(`="`)
			b.WriteString(Escape(v))
			b.WriteByte('"')
		}
	}
}
