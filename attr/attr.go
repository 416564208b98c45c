/*
Package attr provides symbolic names for HTML attributes.

The markup builder accepts any attribute key. The names here are a
convenience for the most common ones, saving clients from typos in string
literals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package attr

// Name is a symbolic identifier for an HTML attribute.
// Its String() method returns the literal attribute key.
type Name uint16

// Symbolic names of common HTML attributes.
const (
	NoName Name = iota
	Accept
	AccessKey
	Action
	Alt
	AriaHidden
	AriaLabel
	Async
	Autocomplete
	Autofocus
	Autoplay
	Charset
	Checked
	Cite
	Class
	Cols
	Colspan
	Content
	ContentEditable
	Controls
	Crossorigin
	Datetime
	Defer
	Dir
	Disabled
	Download
	Draggable
	Enctype
	For
	Form
	Headers
	Height
	Hidden
	High
	Href
	Hreflang
	HTTPEquiv
	ID
	Integrity
	Label
	Lang
	List
	Loading
	Loop
	Low
	Max
	MaxLength
	Media
	Method
	Min
	MinLength
	Multiple
	Muted
	NameAttr
	NoValidate
	Open
	Optimum
	Pattern
	Placeholder
	Poster
	Preload
	ReadOnly
	Rel
	Required
	Reversed
	Role
	Rows
	Rowspan
	Sandbox
	Scope
	Selected
	Size
	Sizes
	Span
	Spellcheck
	Src
	Srcset
	Start
	Step
	Style
	TabIndex
	Target
	Title
	Translate
	Type
	Value
	Width
	Wrap
	nameCount
)

var names = [nameCount]string{
	NoName:          "",
	Accept:          "accept",
	AccessKey:       "accesskey",
	Action:          "action",
	Alt:             "alt",
	AriaHidden:      "aria-hidden",
	AriaLabel:       "aria-label",
	Async:           "async",
	Autocomplete:    "autocomplete",
	Autofocus:       "autofocus",
	Autoplay:        "autoplay",
	Charset:         "charset",
	Checked:         "checked",
	Cite:            "cite",
	Class:           "class",
	Cols:            "cols",
	Colspan:         "colspan",
	Content:         "content",
	ContentEditable: "contenteditable",
	Controls:        "controls",
	Crossorigin:     "crossorigin",
	Datetime:        "datetime",
	Defer:           "defer",
	Dir:             "dir",
	Disabled:        "disabled",
	Download:        "download",
	Draggable:       "draggable",
	Enctype:         "enctype",
	For:             "for",
	Form:            "form",
	Headers:         "headers",
	Height:          "height",
	Hidden:          "hidden",
	High:            "high",
	Href:            "href",
	Hreflang:        "hreflang",
	HTTPEquiv:       "http-equiv",
	ID:              "id",
	Integrity:       "integrity",
	Label:           "label",
	Lang:            "lang",
	List:            "list",
	Loading:         "loading",
	Loop:            "loop",
	Low:             "low",
	Max:             "max",
	MaxLength:       "maxlength",
	Media:           "media",
	Method:          "method",
	Min:             "min",
	MinLength:       "minlength",
	Multiple:        "multiple",
	Muted:           "muted",
	NameAttr:        "name",
	NoValidate:      "novalidate",
	Open:            "open",
	Optimum:         "optimum",
	Pattern:         "pattern",
	Placeholder:     "placeholder",
	Poster:          "poster",
	Preload:         "preload",
	ReadOnly:        "readonly",
	Rel:             "rel",
	Required:        "required",
	Reversed:        "reversed",
	Role:            "role",
	Rows:            "rows",
	Rowspan:         "rowspan",
	Sandbox:         "sandbox",
	Scope:           "scope",
	Selected:        "selected",
	Size:            "size",
	Sizes:           "sizes",
	Span:            "span",
	Spellcheck:      "spellcheck",
	Src:             "src",
	Srcset:          "srcset",
	Start:           "start",
	Step:            "step",
	Style:           "style",
	TabIndex:        "tabindex",
	Target:          "target",
	Title:           "title",
	Translate:       "translate",
	Type:            "type",
	Value:           "value",
	Width:           "width",
	Wrap:            "wrap",
}

var nameFromKey map[string]Name

func init() {
	nameFromKey = make(map[string]Name, nameCount)
	for n := NoName + 1; n < nameCount; n++ {
		nameFromKey[names[n]] = n
	}
}

// String returns the literal attribute key, e.g. "href".
func (n Name) String() string {
	if n >= nameCount {
		return ""
	}
	return names[n]
}

// Lookup finds the symbolic name for an attribute key.
func Lookup(key string) (Name, bool) {
	n, ok := nameFromKey[key]
	return n, ok
}

// Data returns the key of a custom data attribute, e.g. Data("id") = "data-id".
func Data(suffix string) string {
	return "data-" + suffix
}

// Boolean attributes are rendered without a value when set.
var booleans = map[Name]bool{
	Async: true, Autofocus: true, Autoplay: true, Checked: true, Controls: true,
	Defer: true, Disabled: true, Hidden: true, Loop: true, Multiple: true,
	Muted: true, NoValidate: true, Open: true, ReadOnly: true, Required: true,
	Reversed: true, Selected: true,
}

// IsBoolean is true for attributes which are set by presence only, e.g. "disabled".
func (n Name) IsBoolean() bool {
	return booleans[n]
}
