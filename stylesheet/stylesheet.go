package stylesheet

import (
	"strings"

	"github.com/npillmayer/mongrel/style"
)

// Rule is a style rule: a selector (prelude) together with a block of
// declarations.
type Rule struct {
	selector string
	decls    style.Declarations
}

// NewRule creates a rule for a selector. If a property is given more than
// once, the last declaration wins.
//
//     r := stylesheet.NewRule(".a", style.KV("color", "red"), style.KV("margin", "0"))
//     r.Render()   // ".a { color: red; margin: 0; }"
//
func NewRule(selector string, decls ...style.KeyValue) Rule {
	return Rule{selector: selector, decls: style.Declare(decls...)}
}

// RuleFor creates a rule for a selector from a declaration set.
func RuleFor(selector string, decls style.Declarations) Rule {
	return Rule{selector: selector, decls: decls}
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.selector
}

// Declarations returns the declaration block of the rule.
func (r Rule) Declarations() style.Declarations {
	return r.decls
}

// Properties returns the property keys of a rule, sorted.
func (r Rule) Properties() []string {
	return r.decls.Keys()
}

// Value returns the property value for a given key, e.g. "15px".
func (r Rule) Value(key string) style.Property {
	p, _ := r.decls.Get(key)
	return p
}

// With returns a copy of r with an additional declaration.
func (r Rule) With(property, value string) Rule {
	r.decls = r.decls.With(property, style.Property(value))
	return r
}

// Render serializes r as
//
//     selector { p1: v1; p2: v2; }
//
// with declarations sorted by property key. A rule without declarations
// renders as "selector { }".
func (r Rule) Render() string {
	var b strings.Builder
	r.appendTo(&b)
	return b.String()
}

func (r Rule) String() string {
	return r.Render()
}

func (r Rule) appendTo(b *strings.Builder) {
	b.WriteString(r.selector)
	b.WriteString(" { ")
	if !r.decls.Empty() {
		b.WriteString(r.decls.Block())
		b.WriteByte(' ')
	}
	b.WriteByte('}')
}

// --- Style sheets ----------------------------------------------------------

// Sheet is an ordered list of rules. The zero value is an empty style sheet.
// Sheets are immutable: Append returns a new sheet.
type Sheet struct {
	rules []Rule
}

// New creates a style sheet from a list of rules.
func New(rules ...Rule) Sheet {
	return Sheet{}.Append(rules...)
}

// Append returns a new style sheet with rules appended.
func (sheet Sheet) Append(rules ...Rule) Sheet {
	r := make([]Rule, len(sheet.rules), len(sheet.rules)+len(rules))
	copy(r, sheet.rules)
	return Sheet{rules: append(r, rules...)}
}

// AppendRules returns a new style sheet with all the rules from other appended.
func (sheet Sheet) AppendRules(other Sheet) Sheet {
	return sheet.Append(other.rules...)
}

// Empty checks if this stylesheet contains any rules.
func (sheet Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns a copy of all the rules of a stylesheet.
func (sheet Sheet) Rules() []Rule {
	r := make([]Rule, len(sheet.rules))
	copy(r, sheet.rules)
	return r
}

// RulesBySelector returns all rules with a given selector, in order of
// appearance.
func (sheet Sheet) RulesBySelector(selector string) []Rule {
	var r []Rule
	for _, rule := range sheet.rules {
		if rule.selector == selector {
			r = append(r, rule)
		}
	}
	return r
}

// Render serializes all rules, separated by a single space.
func (sheet Sheet) Render() string {
	var b strings.Builder
	for i, rule := range sheet.rules {
		if i > 0 {
			b.WriteByte(' ')
		}
		rule.appendTo(&b)
	}
	tracer().Debugf("rendered style sheet with %d rules", len(sheet.rules))
	return b.String()
}

func (sheet Sheet) String() string {
	return sheet.Render()
}
