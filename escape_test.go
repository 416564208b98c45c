package mongrel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mongrel"
)

func TestEscapeCleanInputUnchanged(t *testing.T) {
	for _, s := range []string{"", "hello", "a;b", "ümlaut – dash", "x = y + 1"} {
		assert.Equal(t, s, mongrel.Escape(s))
	}
}

func TestEscapeReservedCharacters(t *testing.T) {
	assert.Equal(t, "&lt;a&gt;&amp;&apos;&quot;", mongrel.Escape(`<a>&'"`))
	assert.Equal(t, "Tom &amp; Jerry", mongrel.Escape("Tom & Jerry"))
	assert.Equal(t, "&amp;amp;", mongrel.Escape("&amp;"), "escaping is not idempotent on escaped input")
	assert.Equal(t, "ä&lt;ö", mongrel.Escape("ä<ö"))
}
