package dom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/stylesheet"
	"github.com/npillmayer/mongrel/stylesheet/douceuradapter"
)

// Select converts c and returns all nodes matching a CSS selector, in
// document order.
func Select(c mongrel.Content, selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	root, err := Convert(c)
	if err != nil {
		return nil, err
	}
	return sel.MatchAll(root), nil
}

// FindElement returns the first element for atom a in a depth-first
// search of h, or nil.
func FindElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := FindElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// TextContent returns the concatenated text of h and all of its descendents.
func TextContent(h *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	if h != nil {
		collect(h)
	}
	return b.String()
}

// ExtractStyleSheet collects the content of all <style> elements of an HTML
// tree into a single style sheet, in document order.
func ExtractStyleSheet(h *html.Node) (stylesheet.Sheet, error) {
	var sheet stylesheet.Sheet
	if h == nil {
		return sheet, nil
	}
	for _, st := range cascadia.MustCompile("style").MatchAll(h) {
		s, err := douceuradapter.Parse(TextContent(st))
		if err != nil {
			return sheet, err
		}
		sheet = sheet.AppendRules(s)
	}
	return sheet, nil
}

// Render serializes an HTML tree with package golang.org/x/net/html.
func Render(h *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, h); err != nil {
		return "", fmt.Errorf("cannot render HTML tree: %w", err)
	}
	return b.String(), nil
}
