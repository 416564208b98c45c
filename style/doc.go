/*
Package style holds CSS property values and declaration blocks.

Overview

Styles show up twice in a markup document: as inline style attributes of
elements and as rules of style sheets. Both are a set of declarations

    color: black; margin: 0

mapping property keys to values. Type Declarations implements such a set
as an immutable value: every modification returns a copy. Serialization
always orders declarations by property key, making output stable
regardless of the order in which properties have been set.

Property keys are plain strings, as CSS knows a whole lot of properties and
clients may well use vendor-specific ones. For convenience, the most common
properties are available as symbolic names (type Name).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mongrel.style'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.style")
}
