package mongrel

import "strings"

// Content is anything which may be a child of a node.
type Content interface {
	Render() string
}

// Raw is pre-serialized markup. It is inserted into the output verbatim,
// without escaping. Clients are responsible for Raw content being well-formed.
type Raw string

// Render returns r unchanged.
func (r Raw) Render() string {
	return string(r)
}

// --- Groups and flattening -------------------------------------------------

// Group is a sequence of content, possibly nested and possibly containing nil
// items. Groups are flattened when passed as children to a node.
// A Group may also be rendered on its own, which renders the flattened
// sequence without an enclosing element.
type Group []Content

// Render renders the flattened items of g.
func (g Group) Render() string {
	return renderSequence(Flatten(g...))
}

// Flatten turns a nested sequence of content into a linear one. Groups and
// fragments are expanded depth-first, nil items are dropped. The order of items is
// preserved. Flattening an empty sequence results in an empty (non-nil)
// sequence.
func Flatten(items ...Content) []Content {
	flat := make([]Content, 0, len(items))
	return flatten(flat, items)
}

func flatten(flat []Content, items []Content) []Content {
	for _, item := range items {
		switch c := item.(type) {
		case nil:
			continue
		case Group:
			flat = flatten(flat, c)
		case Node:
			if c.tag == "" { // fragment, children are flat already
				flat = append(flat, c.children...)
			} else {
				flat = append(flat, c)
			}
		default:
			flat = append(flat, c)
		}
	}
	return flat
}

// If returns c if cond is true, otherwise nil (which will be dropped from
// child lists).
func If(cond bool, c Content) Content {
	if cond {
		return c
	}
	return nil
}

// IfElse returns a if cond is true, otherwise b.
func IfElse(cond bool, a, b Content) Content {
	if cond {
		return a
	}
	return b
}

// Map will apply a function to each item in a slice, collecting the results
// as a group.
func Map[T any](slice []T, fn func(T) Content) Group {
	g := make(Group, len(slice))
	for i, item := range slice {
		g[i] = fn(item)
	}
	return g
}

// isText is true for content which takes part in word spacing.
func isText(c Content) bool {
	_, ok := c.(TextNode)
	return ok
}

// renderSequence concatenates rendered items. Two text nodes directly
// following each other are separated by a single space.
func renderSequence(items []Content) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0].Render()
	}
	var b strings.Builder
	appendSequence(&b, items)
	return b.String()
}

func appendSequence(b *strings.Builder, items []Content) {
	prevText := false
	for _, item := range items {
		_, isGroup := item.(Group)
		assertThat(item != nil && !isGroup, "child sequence is not flat")
		text := isText(item)
		if text && prevText {
			b.WriteByte(' ')
		}
		b.WriteString(item.Render())
		prevText = text
	}
}
