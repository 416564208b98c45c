package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mongrel/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for outer and inner display mode.
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var displayKeywords = []struct {
	keyword string
	mode    DisplayMode
}{
	{"none", DisplayNone},
	{"block", BlockMode | InnerBlockMode},
	{"inline", InlineMode | InnerInlineMode},
	{"inline-block", InlineMode | InnerBlockMode},
	{"list-item", ListItemMode | BlockMode},
	{"flow-root", BlockMode | FlowRootMode},
	{"flex", BlockMode | FlexMode},
	{"inline-flex", InlineMode | FlexMode},
	{"grid", BlockMode | GridMode},
	{"inline-grid", InlineMode | GridMode},
	{"table", BlockMode | TableMode},
	{"inline-table", InlineMode | TableMode},
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Property returns the keyword for the CSS display property, or
// style.NullStyle if disp has no keyword.
func (disp DisplayMode) Property() style.Property {
	for _, k := range displayKeywords {
		if k.mode == disp {
			return style.Property(k.keyword)
		}
	}
	return style.NullStyle
}

func (disp DisplayMode) String() string {
	if p := disp.Property(); p != style.NullStyle {
		return string(p)
	}
	return fmt.Sprintf("DisplayMode(%#04x)", uint16(disp))
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	for _, k := range displayKeywords {
		if k.keyword == display {
			return k.mode, nil
		}
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
