package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"

	"github.com/npillmayer/mongrel/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	dimenPX      uint32 = 0x0a00
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	x     float64 // scale for relative units
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage n
	| ViewRel unit
	| FontRel unit
	| Pixels n
	| ContentRel Min | Max | Fit
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{x: n, flags: dimenPercent}
}

// Px creates a CSS dimension in CSS pixels.
func Px(n float64) DimenT {
	return DimenT{x: n, flags: dimenPX}
}

// Em creates a font-relative dimension.
func Em(n float64) DimenT {
	return DimenT{x: n, flags: dimenEM}
}

// Ex creates a dimension relative to the x-height of the font.
func Ex(n float64) DimenT {
	return DimenT{x: n, flags: dimenEX}
}

// Ch creates a dimension relative to the advance of glyph '0'.
func Ch(n float64) DimenT {
	return DimenT{x: n, flags: dimenCH}
}

// Rem creates a dimension relative to the font size of the root element.
func Rem(n float64) DimenT {
	return DimenT{x: n, flags: dimenREM}
}

// Vw creates a dimension relative to the viewport width.
func Vw(n float64) DimenT {
	return DimenT{x: n, flags: dimenVW}
}

// Vh creates a dimension relative to the viewport height.
func Vh(n float64) DimenT {
	return DimenT{x: n, flags: dimenVH}
}

// Vmin creates a dimension relative to the smaller viewport side.
func Vmin(n float64) DimenT {
	return DimenT{x: n, flags: dimenVMIN}
}

// Vmax creates a dimension relative to the larger viewport side.
func Vmax(n float64) DimenT {
	return DimenT{x: n, flags: dimenVMAX}
}

// Content creates a content-dependent dimension. flag is one of
// DimenContentMax, DimenContentMin or DimenContentFit.
func Content(flag uint32) DimenT {
	return DimenT{flags: flag & contentMask}
}

// IsNone returns true if d is unset.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute returns true if d is a fixed dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative returns true if d is relative to a font, the viewport or a percentage.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

var unitSuffix = map[uint32]string{
	dimenEM:      "em",
	dimenEX:      "ex",
	dimenCH:      "ch",
	dimenREM:     "rem",
	dimenVW:      "vw",
	dimenVH:      "vh",
	dimenVMIN:    "vmin",
	dimenVMAX:    "vmax",
	dimenPercent: "%",
	dimenPX:      "px",
}

var contentKeyword = map[uint32]string{
	DimenContentMax: "max-content",
	DimenContentMin: "min-content",
	DimenContentFit: "fit-content",
}

// Property returns d as a CSS property value. Fixed dimensions are given in
// points. An unset dimension returns style.NullStyle.
func (d DimenT) Property() style.Property {
	switch {
	case d.flags&relativeMask > 0:
		return style.Property(number(d.x) + unitSuffix[d.flags&relativeMask])
	case d.flags&contentMask > 0:
		return style.Property(contentKeyword[d.flags&contentMask])
	}
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		if d.d == 0 {
			return "0"
		}
		return style.Property(number(float64(d.d)/float64(dimen.PT)) + "pt")
	}
	return style.NullStyle
}

// String returns the CSS notation of d.
func (d DimenT) String() string {
	return string(d.Property())
}

func number(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ParseDimen reads a CSS dimension from a property value. Supported are the
// keywords, fixed lengths in pt, and the relative units of DimenT. It will
// never return an error, but an unset dimension for illegal input.
func ParseDimen(p style.Property) DimenT {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch s {
	case "":
		return DimenT{}
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	case "0":
		return JustDimen(0)
	}
	for flag, kw := range contentKeyword {
		if s == kw {
			return Content(flag)
		}
	}
	if n, ok := scaled(s, "pt"); ok {
		return JustDimen(dimen.DU(n * float64(dimen.PT)))
	}
	// "rem" must be tried before "em"
	for _, flag := range []uint32{dimenVMIN, dimenVMAX, dimenREM, dimenEM, dimenEX,
		dimenCH, dimenVW, dimenVH, dimenPX, dimenPercent} {
		if n, ok := scaled(s, unitSuffix[flag]); ok {
			return DimenT{x: n, flags: flag}
		}
	}
	return DimenT{}
}

func scaled(s, suffix string) (float64, bool) {
	if !strings.HasSuffix(s, suffix) {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
	return n, err == nil
}
