package mongrel

import "strings"

const reservedChars = `&<>'"`

// Escape replaces the characters reserved in markup by their entities:
//
//     &  →  &amp;
//     <  →  &lt;
//     >  →  &gt;
//     '  →  &apos;
//     "  →  &quot;
//
// If raw contains none of them, raw is returned as is.
func Escape(raw string) string {
	if !strings.ContainsAny(raw, reservedChars) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw) + 16)
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\'':
			b.WriteString("&apos;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
