/*
Package douceuradapter reads CSS text into style sheets and declaration sets.

Parsing is delegated to github.com/aymerick/douceur. Only plain style rules
are carried over; @-rules (media queries, font faces, imports) are skipped,
as package stylesheet does not support them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/mongrel/style"
	"github.com/npillmayer/mongrel/stylesheet"
)

// tracer traces with key 'mongrel.stylesheet'.
func tracer() tracing.Trace {
	return tracing.Select("mongrel.stylesheet")
}

// Parse parses CSS text into a style sheet. Rules keep their order of
// appearance. Declarations marked as important keep their "!important"
// suffix as part of the value.
func Parse(text string) (stylesheet.Sheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return stylesheet.Sheet{}, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return Convert(c), nil
}

// Convert converts a douceur style sheet.
func Convert(c *css.Stylesheet) stylesheet.Sheet {
	var sheet stylesheet.Sheet
	if c == nil {
		return sheet
	}
	rules := make([]stylesheet.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("style sheet: skipping @-rule %s", r.Name)
			continue
		}
		rules = append(rules, stylesheet.RuleFor(r.Prelude, declarations(r.Declarations)))
	}
	return sheet.Append(rules...)
}

// ParseDeclarations parses the content of a style attribute, e.g.
//
//     color: red; margin: 0 auto
//
//
// The final declaration need not be terminated by a semicolon.
func ParseDeclarations(text string) (style.Declarations, error) {
	// douceur loses the value of an unterminated last declaration
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return style.Declarations{}, fmt.Errorf("cannot parse declarations: %w", err)
	}
	return declarations(decls), nil
}

func declarations(decls []*css.Declaration) style.Declarations {
	kvs := make([]style.KeyValue, 0, len(decls))
	for _, d := range decls {
		v := d.Value
		if d.Important {
			v += " !important"
		}
		kvs = append(kvs, style.KV(d.Property, v))
	}
	return style.Declare(kvs...)
}
