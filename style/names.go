package style

// Name is a symbolic identifier for a CSS property.
// Its String() method returns the literal property key.
type Name uint16

// Symbolic names of common CSS properties.
const (
	NoName Name = iota
	AlignContent
	AlignItems
	AlignSelf
	Background
	BackgroundColor
	BackgroundImage
	BackgroundPosition
	BackgroundRepeat
	BackgroundSize
	Border
	BorderBottom
	BorderBottomColor
	BorderBottomLeftRadius
	BorderBottomRightRadius
	BorderBottomStyle
	BorderBottomWidth
	BorderCollapse
	BorderColor
	BorderLeft
	BorderLeftColor
	BorderLeftStyle
	BorderLeftWidth
	BorderRadius
	BorderRight
	BorderRightColor
	BorderRightStyle
	BorderRightWidth
	BorderSpacing
	BorderStyle
	BorderTop
	BorderTopColor
	BorderTopLeftRadius
	BorderTopRightRadius
	BorderTopStyle
	BorderTopWidth
	BorderWidth
	Bottom
	BoxShadow
	BoxSizing
	Clear
	Color
	ColumnGap
	Cursor
	Direction
	Display
	Flex
	FlexBasis
	FlexDirection
	FlexGrow
	FlexShrink
	FlexWrap
	Float
	Font
	FontFamily
	FontSize
	FontStyle
	FontVariant
	FontWeight
	Gap
	GridTemplateColumns
	GridTemplateRows
	Height
	JustifyContent
	Left
	LetterSpacing
	LineHeight
	ListStyle
	ListStyleType
	Margin
	MarginBottom
	MarginLeft
	MarginRight
	MarginTop
	MaxHeight
	MaxWidth
	MinHeight
	MinWidth
	Opacity
	Outline
	Overflow
	OverflowX
	OverflowY
	Padding
	PaddingBottom
	PaddingLeft
	PaddingRight
	PaddingTop
	Position
	Right
	RowGap
	TextAlign
	TextDecoration
	TextIndent
	TextOverflow
	TextShadow
	TextTransform
	Top
	Transform
	Transition
	VerticalAlign
	Visibility
	WhiteSpace
	Width
	WordBreak
	WordSpacing
	WordWrap
	ZIndex
	nameCount
)

type nameEntry struct {
	key   string
	group string
}

var names = [nameCount]nameEntry{
	NoName:                  {"", PGX},
	AlignContent:            {"align-content", PGDisplay},
	AlignItems:              {"align-items", PGDisplay},
	AlignSelf:               {"align-self", PGDisplay},
	Background:              {"background", PGColor},
	BackgroundColor:         {"background-color", PGColor},
	BackgroundImage:         {"background-image", PGColor},
	BackgroundPosition:      {"background-position", PGColor},
	BackgroundRepeat:        {"background-repeat", PGColor},
	BackgroundSize:          {"background-size", PGColor},
	Border:                  {"border", PGBorder},
	BorderBottom:            {"border-bottom", PGBorder},
	BorderBottomColor:       {"border-bottom-color", PGBorder},
	BorderBottomLeftRadius:  {"border-bottom-left-radius", PGBorder},
	BorderBottomRightRadius: {"border-bottom-right-radius", PGBorder},
	BorderBottomStyle:       {"border-bottom-style", PGBorder},
	BorderBottomWidth:       {"border-bottom-width", PGBorder},
	BorderCollapse:          {"border-collapse", PGBorder},
	BorderColor:             {"border-color", PGBorder},
	BorderLeft:              {"border-left", PGBorder},
	BorderLeftColor:         {"border-left-color", PGBorder},
	BorderLeftStyle:         {"border-left-style", PGBorder},
	BorderLeftWidth:         {"border-left-width", PGBorder},
	BorderRadius:            {"border-radius", PGBorder},
	BorderRight:             {"border-right", PGBorder},
	BorderRightColor:        {"border-right-color", PGBorder},
	BorderRightStyle:        {"border-right-style", PGBorder},
	BorderRightWidth:        {"border-right-width", PGBorder},
	BorderSpacing:           {"border-spacing", PGBorder},
	BorderStyle:             {"border-style", PGBorder},
	BorderTop:               {"border-top", PGBorder},
	BorderTopColor:          {"border-top-color", PGBorder},
	BorderTopLeftRadius:     {"border-top-left-radius", PGBorder},
	BorderTopRightRadius:    {"border-top-right-radius", PGBorder},
	BorderTopStyle:          {"border-top-style", PGBorder},
	BorderTopWidth:          {"border-top-width", PGBorder},
	BorderWidth:             {"border-width", PGBorder},
	Bottom:                  {"bottom", PGDisplay},
	BoxShadow:               {"box-shadow", PGBorder},
	BoxSizing:               {"box-sizing", PGDimension},
	Clear:                   {"clear", PGDisplay},
	Color:                   {"color", PGColor},
	ColumnGap:               {"column-gap", PGDisplay},
	Cursor:                  {"cursor", PGX},
	Direction:               {"direction", PGText},
	Display:                 {"display", PGDisplay},
	Flex:                    {"flex", PGDisplay},
	FlexBasis:               {"flex-basis", PGDisplay},
	FlexDirection:           {"flex-direction", PGDisplay},
	FlexGrow:                {"flex-grow", PGDisplay},
	FlexShrink:              {"flex-shrink", PGDisplay},
	FlexWrap:                {"flex-wrap", PGDisplay},
	Float:                   {"float", PGDisplay},
	Font:                    {"font", PGFont},
	FontFamily:              {"font-family", PGFont},
	FontSize:                {"font-size", PGFont},
	FontStyle:               {"font-style", PGFont},
	FontVariant:             {"font-variant", PGFont},
	FontWeight:              {"font-weight", PGFont},
	Gap:                     {"gap", PGDisplay},
	GridTemplateColumns:     {"grid-template-columns", PGDisplay},
	GridTemplateRows:        {"grid-template-rows", PGDisplay},
	Height:                  {"height", PGDimension},
	JustifyContent:          {"justify-content", PGDisplay},
	Left:                    {"left", PGDisplay},
	LetterSpacing:           {"letter-spacing", PGText},
	LineHeight:              {"line-height", PGText},
	ListStyle:               {"list-style", PGDisplay},
	ListStyleType:           {"list-style-type", PGDisplay},
	Margin:                  {"margin", PGMargins},
	MarginBottom:            {"margin-bottom", PGMargins},
	MarginLeft:              {"margin-left", PGMargins},
	MarginRight:             {"margin-right", PGMargins},
	MarginTop:               {"margin-top", PGMargins},
	MaxHeight:               {"max-height", PGDimension},
	MaxWidth:                {"max-width", PGDimension},
	MinHeight:               {"min-height", PGDimension},
	MinWidth:                {"min-width", PGDimension},
	Opacity:                 {"opacity", PGColor},
	Outline:                 {"outline", PGBorder},
	Overflow:                {"overflow", PGDisplay},
	OverflowX:               {"overflow-x", PGDisplay},
	OverflowY:               {"overflow-y", PGDisplay},
	Padding:                 {"padding", PGPadding},
	PaddingBottom:           {"padding-bottom", PGPadding},
	PaddingLeft:             {"padding-left", PGPadding},
	PaddingRight:            {"padding-right", PGPadding},
	PaddingTop:              {"padding-top", PGPadding},
	Position:                {"position", PGDisplay},
	Right:                   {"right", PGDisplay},
	RowGap:                  {"row-gap", PGDisplay},
	TextAlign:               {"text-align", PGText},
	TextDecoration:          {"text-decoration", PGText},
	TextIndent:              {"text-indent", PGText},
	TextOverflow:            {"text-overflow", PGText},
	TextShadow:              {"text-shadow", PGText},
	TextTransform:           {"text-transform", PGText},
	Top:                     {"top", PGDisplay},
	Transform:               {"transform", PGDisplay},
	Transition:              {"transition", PGX},
	VerticalAlign:           {"vertical-align", PGText},
	Visibility:              {"visibility", PGDisplay},
	WhiteSpace:              {"white-space", PGText},
	Width:                   {"width", PGDimension},
	WordBreak:               {"word-break", PGText},
	WordSpacing:             {"word-spacing", PGText},
	WordWrap:                {"word-wrap", PGText},
	ZIndex:                  {"z-index", PGDisplay},
}

var nameFromKey map[string]Name

func init() {
	nameFromKey = make(map[string]Name, nameCount)
	for n := NoName + 1; n < nameCount; n++ {
		nameFromKey[names[n].key] = n
	}
}

// String returns the CSS property key, e.g. "margin-top".
func (n Name) String() string {
	if n >= nameCount {
		return ""
	}
	return names[n].key
}

// Group returns the name of the property group n belongs to.
func (n Name) Group() string {
	if n >= nameCount {
		return PGX
	}
	return names[n].group
}

// Lookup finds the symbolic name for a CSS property key.
func Lookup(key string) (Name, bool) {
	n, ok := nameFromKey[key]
	return n, ok
}
