/*
Package html is a thin per-tag layer on top of the markup builder.

Elements are created by functions named after their tag and shaped by
modifiers:

    page := html.Div(html.Class("card"),
        html.Children(
            mongrel.Text("Hello").Bold(),
            html.Br(),
            html.A(html.Href("/next"), html.Children(mongrel.Text("next"))),
        ))

Modifiers only ever call the immutable With… operations of mongrel.Node,
therefore everything built with this package could just as well be built
with package mongrel alone.

Complete pages are assembled with Document, configured by functional
options.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mongrel.html'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.html")
}
