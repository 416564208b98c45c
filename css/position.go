package css

import (
	"strings"

	"github.com/npillmayer/mongrel/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the offset properties top, right, bottom or left.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirName = [...]string{"top", "right", "bottom", "left"}

func (dir PosDir) String() string {
	if dir > Left {
		return "?"
	}
	return posDirName[dir]
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid PosDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := ZeroOffsets()
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left), all unset.
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
	| Sticky top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provided partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// Sticky creates a CSS position of value `sticky`, given optional offsets.
func Sticky(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionSticky, offsets: NormalizeOffsets(offsets)}
}

var positionName = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	p = style.Property(strings.ToLower(strings.TrimSpace(string(p))))
	switch p {
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	case "sticky":
		return Sticky(nil)
	}
	return PositionT{}
}

// Property returns the value for the CSS position property.
func (p PositionT) Property() style.Property {
	return style.Property(positionName[p.kind])
}

// Declarations returns the position property together with all offsets set.
// An unset position results in an empty declaration set.
func (p PositionT) Declarations() style.Declarations {
	if p.kind == positionUnset {
		return style.Declarations{}
	}
	kvs := []style.KeyValue{style.KV("position", string(p.Property()))}
	for _, o := range p.offsets {
		if !o.Dim.IsNone() {
			kvs = append(kvs, style.KV(o.Dir.String(), string(o.Dim.Property())))
		}
	}
	return style.Declare(kvs...)
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents an absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsSticky returns true if p represents a sticky position.
func (p PositionT) IsSticky() bool {
	return p.kind == positionSticky
}
