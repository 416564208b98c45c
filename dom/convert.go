package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/mongrel"
)

// fragmentContext is the context element for parsing serialized text and
// raw markup.
var fragmentContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// Convert converts a content tree into an HTML parse tree. The result is a
// node of type html.DocumentNode, holding the converted content as its
// children. Convert does not add <html>, <head> or <body> elements; use
// package html to build a complete document.
func Convert(c mongrel.Content) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}
	if err := appendContent(root, mongrel.Flatten(c)); err != nil {
		return nil, err
	}
	return root, nil
}

// Nodes converts a sequence of content items into a list of parentless
// sibling nodes.
func Nodes(items ...mongrel.Content) ([]*html.Node, error) {
	root, err := Convert(mongrel.Group(items))
	if err != nil {
		return nil, err
	}
	var nodes []*html.Node
	for ch := root.FirstChild; ch != nil; ch = root.FirstChild {
		root.RemoveChild(ch)
		nodes = append(nodes, ch)
	}
	return nodes, nil
}

func appendContent(parent *html.Node, items []mongrel.Content) error {
	prevText := false
	for _, item := range items {
		_, isText := item.(mongrel.TextNode)
		if isText && prevText {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}
		prevText = isText
		if err := appendItem(parent, item); err != nil {
			return err
		}
	}
	return nil
}

func appendItem(parent *html.Node, item mongrel.Content) error {
	switch c := item.(type) {
	case mongrel.Node: // fragments have been spliced by Flatten
		el := element(c)
		parent.AppendChild(el)
		return appendContent(el, c.Children())
	case mongrel.Group:
		return appendContent(parent, mongrel.Flatten(c))
	case mongrel.TextNode:
		if isRawText(parent) {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: c.Value()})
			return nil
		}
		return appendFragment(parent, c.Render())
	case mongrel.Raw:
		if isRawText(parent) {
			parent.AppendChild(&html.Node{Type: html.TextNode, Data: string(c)})
			return nil
		}
		return appendFragment(parent, string(c))
	}
	// content types outside of package mongrel are known by their output only
	return appendFragment(parent, item.Render())
}

// element creates an element node for n, without children.
func element(n mongrel.Node) *html.Node {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag(),
		DataAtom: atom.Lookup([]byte(n.Tag())),
	}
	attrs := n.Attributes()
	styles := attrs.Styles()
	if !styles.Empty() {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: styles.Inline()})
	}
	for _, k := range attrs.Keys() {
		if k == "style" && !styles.Empty() {
			continue
		}
		v, _ := attrs.Get(k)
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: v})
	}
	return el
}

// isRawText is true for elements whose content is not parsed as markup.
func isRawText(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Style || n.DataAtom == atom.Script)
}

func appendFragment(parent *html.Node, markup string) error {
	if markup == "" {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return fmt.Errorf("cannot parse markup fragment %q: %w", markup, err)
	}
	tracer().Debugf("fragment %q parsed into %d nodes", markup, len(nodes))
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}
