package html

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/attr"
	"github.com/npillmayer/mongrel/stylesheet"
)

// Doctype is emitted in front of every rendered document.
const Doctype = "<!DOCTYPE html>"

// Document is a complete HTML page: head metadata, an optional embedded
// style sheet and body content. Documents are immutable; options derive new
// documents.
type Document struct {
	lang    string
	charset string
	title   string
	meta    []mongrel.Content
	sheet   stylesheet.Sheet
	head    []mongrel.Content
	body    []mongrel.Content
}

// Option configures a document.
type Option func(Document) Document

// NewDocument creates a document with charset "utf-8", configured by opts.
func NewDocument(opts ...Option) Document {
	return Document{charset: "utf-8"}.With(opts...)
}

// With returns a copy of doc with opts applied.
func (doc Document) With(opts ...Option) Document {
	for _, opt := range opts {
		doc = opt(doc)
	}
	return doc
}

// Lang sets the language of the document, e.g. "en".
func Lang(lang string) Option {
	return func(doc Document) Document {
		doc.lang = lang
		return doc
	}
}

// Charset sets the character encoding. An empty charset omits the
// <meta charset> element.
func Charset(charset string) Option {
	return func(doc Document) Document {
		doc.charset = charset
		return doc
	}
}

// Title sets the document title.
func Title(title string) Option {
	return func(doc Document) Document {
		doc.title = title
		return doc
	}
}

// Meta adds a <meta name=… content=…> element to the head.
func Meta(name, content string) Option {
	m := Tag(atom.Meta, Attr(attr.NameAttr, name), Attr(attr.Content, content))
	return func(doc Document) Document {
		doc.meta = appendContent(doc.meta, m)
		return doc
	}
}

// StyleSheet adds the rules of sheet to the embedded style sheet.
func StyleSheet(sheet stylesheet.Sheet) Option {
	return func(doc Document) Document {
		doc.sheet = doc.sheet.AppendRules(sheet)
		return doc
	}
}

// Head appends arbitrary content to the head, e.g. <link> elements.
func Head(items ...mongrel.Content) Option {
	return func(doc Document) Document {
		doc.head = appendContent(doc.head, items...)
		return doc
	}
}

// Body appends content to the body.
func Body(items ...mongrel.Content) Option {
	return func(doc Document) Document {
		doc.body = appendContent(doc.body, items...)
		return doc
	}
}

// appendContent never shares backing storage with items.
func appendContent(items []mongrel.Content, more ...mongrel.Content) []mongrel.Content {
	c := make([]mongrel.Content, len(items), len(items)+len(more))
	copy(c, items)
	return append(c, more...)
}

// StyleElement creates a <style> element holding the serialized rules of sheet.
func StyleElement(sheet stylesheet.Sheet) mongrel.Node {
	return Tag(atom.Style, Children(mongrel.Raw(sheet.Render())))
}

// Node returns the <html> element of the document.
func (doc Document) Node() mongrel.Node {
	head := mongrel.Build(func(b *mongrel.Builder) {
		if doc.charset != "" {
			b.Add(Tag(atom.Meta, Attr(attr.Charset, doc.charset)))
		}
		if doc.title != "" {
			b.Add(Tag(atom.Title, Children(mongrel.Text(doc.title))))
		}
		b.Add(doc.meta...)
		b.AddIf(!doc.sheet.Empty(), StyleElement(doc.sheet))
		b.Add(doc.head...)
	})
	return Tag(atom.Html,
		When(doc.lang != "", Attr(attr.Lang, doc.lang)),
		Children(
			Tag(atom.Head, Children(head)),
			Tag(atom.Body, Children(doc.body...)),
		))
}

// Render serializes the document, starting with the doctype.
func (doc Document) Render() string {
	var b strings.Builder
	b.WriteString(Doctype)
	b.WriteString(doc.Node().Render())
	tracer().Debugf("rendered document of %d bytes", b.Len())
	return b.String()
}

func (doc Document) String() string {
	return doc.Render()
}
