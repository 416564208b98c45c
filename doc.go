/*
Package mongrel builds markup documents from immutable element values.

Overview

Clients compose a tree of nodes bottom-up. Every node is a value: calling
one of the modifiers

    WithAttribute(key, value)
    WithStyle(property, value)
    WithChildren(children...)

returns a new node, leaving the receiver untouched. A partially configured
node may therefore be used as a template:

    card := mongrel.New("div").WithAttribute("class", "card")
    a := card.WithChildren(mongrel.Text("first"))
    b := card.WithChildren(mongrel.Text("second").Bold())

Nothing is serialized until Render() is called. Rendering is deterministic:
attributes are emitted in lexical order, preceded by the style attribute, so
identical trees always produce identical output, regardless of the order in
which attributes were set.

Children

Child lists are given as variadic Content arguments or assembled with a
Builder. Groups (e.g., produced from loops with Map) are flattened,
nil content (from If without a match) is dropped. Two text nodes which end
up next to each other are separated by a single space when rendered.

Text

Text nodes escape their value and may stack wrapper tags:

    mongrel.Text("x").Bold().Italic()   // <b><i>x</i></b>

The first wrapper applied becomes the outermost tag.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mongrel

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mongrel.markup'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.markup")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("mongrel: "+msg, msgargs...)
		panic(msg)
	}
}
