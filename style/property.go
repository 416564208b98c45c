package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// KV is a shortcut to create a KeyValue.
func KV(key string, value string) KeyValue {
	return KeyValue{Key: key, Value: Property(value)}
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- Declarations ----------------------------------------------------------

// Declarations is a set of CSS declarations, i.e. a mapping from property keys
// to property values. The zero value is an empty set, ready to use.
//
// Declarations are immutable: With and Without return modified copies, the
// receiver is left unchanged.
type Declarations struct {
	props map[string]Property // into struct to make it opaque for clients
}

// Declare creates a declaration set from a list of key-value pairs. If a key
// is present more than once, the last one wins.
func Declare(kvs ...KeyValue) Declarations {
	if len(kvs) == 0 {
		return Declarations{}
	}
	d := Declarations{props: make(map[string]Property, len(kvs))}
	for _, kv := range kvs {
		d.props[kv.Key] = kv.Value
	}
	return d
}

func (d Declarations) clone(extra int) Declarations {
	props := make(map[string]Property, len(d.props)+extra)
	for k, v := range d.props {
		props[k] = v
	}
	return Declarations{props: props}
}

// With returns a copy of d, with property key set to value p.
// Overwrites an existing value, if present.
func (d Declarations) With(key string, p Property) Declarations {
	c := d.clone(1)
	c.props[key] = p
	return c
}

// Without returns a copy of d with property key removed.
func (d Declarations) Without(key string) Declarations {
	if _, ok := d.props[key]; !ok {
		return d
	}
	c := d.clone(0)
	delete(c.props, key)
	return c
}

// Merge returns a copy of d, overlayed with all properties of other.
// For keys present in both sets, the value from other wins.
func (d Declarations) Merge(other Declarations) Declarations {
	if other.Empty() {
		return d
	}
	if d.Empty() {
		return other
	}
	c := d.clone(len(other.props))
	for k, v := range other.props {
		c.props[k] = v
	}
	return c
}

// Get a property's value.
func (d Declarations) Get(key string) (Property, bool) {
	if d.props == nil {
		return NullStyle, false
	}
	p, ok := d.props[key]
	return p, ok
}

// IsSet is a predicated wether a non-empty property is set.
func (d Declarations) IsSet(key string) bool {
	p, ok := d.Get(key)
	return ok && !p.IsEmpty()
}

// Len returns the number of declarations.
func (d Declarations) Len() int {
	return len(d.props)
}

// Empty is true for a set without declarations.
func (d Declarations) Empty() bool {
	return len(d.props) == 0
}

// Keys returns the property keys, sorted lexicographically.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d.props))
	for k := range d.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all declarations, sorted by key.
func (d Declarations) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(d.props))
	for _, k := range d.Keys() {
		r = append(r, KeyValue{k, d.props[k]})
	}
	return r
}

// Inline serializes the declarations in the form used for style attributes:
//
//     color: red; margin: 0
//
// Declarations are sorted by property key. There is no trailing semicolon.
func (d Declarations) Inline() string {
	return d.join(false)
}

// Block serializes the declarations in the form used for style sheet rules:
//
//     color: red; margin: 0;
//
// Declarations are sorted by property key, every declaration is terminated
// by a semicolon.
func (d Declarations) Block() string {
	return d.join(true)
}

func (d Declarations) join(terminate bool) string {
	if d.Empty() {
		return ""
	}
	var b strings.Builder
	for i, k := range d.Keys() {
		if i > 0 {
			if !terminate {
				b.WriteByte(';')
			}
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(string(d.props[k]))
		if terminate {
			b.WriteByte(';')
		}
	}
	return b.String()
}

// String is the inline serialization of d.
func (d Declarations) String() string {
	return d.Inline()
}

// Longhand returns a copy of d, where all compound properties which are
// recognized by SplitCompoundProperty are replaced by their individual
// components. Compounds with an unexpected number of values are left as is.
func (d Declarations) Longhand() Declarations {
	c := d.clone(0)
	for k, v := range d.props {
		kvs, err := SplitCompoundProperty(k, v)
		if err != nil {
			continue
		}
		delete(c.props, k)
		for _, kv := range kvs {
			c.props[kv.Key] = kv.Value
		}
	}
	return c
}

// --- Property groups -------------------------------------------------------

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if n, ok := Lookup(key); ok {
		return n.Group()
	}
	tracer().Debugf("style: no property group for key %q", key)
	return PGX
}

// Group partitions declarations into property groups. Within each group,
// declarations are sorted by key.
func (d Declarations) Group() map[string][]KeyValue {
	groups := make(map[string][]KeyValue)
	for _, kv := range d.Properties() {
		g := GroupNameFromPropertyKey(kv.Key)
		groups[g] = append(groups[g], kv)
	}
	return groups
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
