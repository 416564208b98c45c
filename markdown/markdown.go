/*
Package markdown converts Markdown text into markup content.

Conversion is done by github.com/yuin/goldmark with GitHub Flavored Markdown
enabled. The result is a mongrel.Raw value, ready to be inserted into a
content tree. HTML embedded in the Markdown source is dropped, so the
output of Convert is safe to embed even for untrusted input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/npillmayer/mongrel"
)

// tracer traces with key 'mongrel.markup'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.markup")
}

// md is safe for concurrent use.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Convert converts Markdown source to markup.
func Convert(source string) (mongrel.Raw, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown: %w", err)
	}
	tracer().Debugf("markdown: %d bytes of source converted to %d bytes", len(source), buf.Len())
	return mongrel.Raw(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Must is like Convert, but panics on error. It is intended for sources
// known at compile time.
func Must(source string) mongrel.Raw {
	r, err := Convert(source)
	if err != nil {
		panic(err)
	}
	return r
}
