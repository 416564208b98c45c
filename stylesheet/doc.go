/*
Package stylesheet serializes CSS style sheets.

Overview

A style sheet is an ordered list of rules, each made of a selector and a
block of declarations:

    .a { color: red; margin: 0; }

Rules are immutable values. Declarations are always serialized in the
lexical order of their property keys, making the output diff-stable
regardless of insertion order. Selectors are not validated, and there is no
support for nested rules or @-rules: this package renders style sheets, it
does not compute a cascade.

For parsing existing CSS text into rules, see sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mongrel.stylesheet'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.stylesheet")
}
