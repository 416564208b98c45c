/*
Package dom converts markup content trees into HTML parse trees.

The target is golang.org/x/net/html, the de-facto standard DOM
representation in Go. Once converted, trees may be queried with CSS
selectors (using github.com/andybalholm/cascadia), rendered by package
golang.org/x/net/html, or handed over to any tool working on *html.Node.

Conversion is structural for element nodes: tags, attributes and inline
styles are carried over one-to-one. Text nodes and raw markup are first
serialized and then parsed as HTML fragments, so that wrapper tags of text
nodes and trusted markup snippets appear as proper elements in the
resulting tree. Adjacent text nodes are separated by a text node holding a
single space, just as in the serialized form.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mongrel.dom'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.dom")
}
