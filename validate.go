package mongrel

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// NameKind tells which kind of name a NameError complains about.
type NameKind int

// Kinds of names checked by Validate.
const (
	TagName NameKind = iota
	AttributeName
	StyleName
)

func (k NameKind) String() string {
	switch k {
	case TagName:
		return "tag"
	case AttributeName:
		return "attribute"
	case StyleName:
		return "style property"
	}
	return "name"
}

// NameError is reported by Validate for a malformed name.
type NameError struct {
	Kind NameKind
	Name string
	Tag  string // enclosing element, if any
}

func (e *NameError) Error() string {
	if e.Kind == TagName || e.Tag == "" {
		return fmt.Sprintf("invalid %s name %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("invalid %s name %q in <%s>", e.Kind, e.Name, e.Tag)
}

// forbidden characters for names, in addition to whitespace and controls
const forbiddenInNames = `"'<>/=`

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f || strings.ContainsRune(forbiddenInNames, r) {
			return false
		}
	}
	return true
}

// Validate checks the names of tags, attributes and style properties of a
// content tree. Rendering never needs validation, as it accepts any name
// verbatim; Validate is a help for clients who build trees from untrusted
// input.
//
// All errors found are reported, combined into a single error value
// (see go.uber.org/multierr). Use multierr.Errors to access single errors,
// each of which is a *NameError.
func Validate(c Content) error {
	return validate(c, nil)
}

func validate(c Content, err error) error {
	switch n := c.(type) {
	case Node:
		if n.tag != "" && !validName(n.tag) {
			err = multierr.Append(err, &NameError{Kind: TagName, Name: n.tag})
		}
		err = validateAttributes(n.attrs, n.tag, err)
		for _, ch := range n.children {
			err = validate(ch, err)
		}
	case TextNode:
		for _, w := range n.wrappers {
			if !validName(w.tag) {
				err = multierr.Append(err, &NameError{Kind: TagName, Name: w.tag})
			}
			err = validateAttributes(w.attrs, w.tag, err)
		}
		err = validateAttributes(n.attrs, InlineTag, err)
	case Group:
		for _, ch := range Flatten(n...) {
			err = validate(ch, err)
		}
	}
	return err
}

func validateAttributes(a Attributes, tag string, err error) error {
	for _, k := range a.Keys() {
		if !validName(k) {
			err = multierr.Append(err, &NameError{Kind: AttributeName, Name: k, Tag: tag})
		}
	}
	for _, k := range a.styles.Keys() {
		if !validName(k) || strings.ContainsAny(k, ":;") {
			err = multierr.Append(err, &NameError{Kind: StyleName, Name: k, Tag: tag})
		}
	}
	return err
}
