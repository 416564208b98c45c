package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mongrel/style"
)

func TestDeclarationsImmutable(t *testing.T) {
	d := style.Declare(style.KV("color", "red"))
	e := d.With("margin", "0")
	f := e.Without("color")
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"margin"}, f.Keys())
	assert.True(t, d.IsSet("color"))
	assert.False(t, d.IsSet("margin"))
}

func TestDeclarationsOverwrite(t *testing.T) {
	d := style.Declare(style.KV("color", "red"), style.KV("color", "blue"))
	p, ok := d.Get("color")
	assert.True(t, ok)
	assert.Equal(t, style.Property("blue"), p)
	m := d.Merge(style.Declare(style.KV("color", "green"), style.KV("top", "0")))
	assert.Equal(t, "color: green; top: 0", m.Inline())
	assert.Equal(t, "color: blue", d.Inline())
}

func TestDeclarationsSerialization(t *testing.T) {
	var zero style.Declarations
	assert.True(t, zero.Empty())
	assert.Equal(t, "", zero.Inline())
	assert.Equal(t, "", zero.Block())
	_, ok := zero.Get("x")
	assert.False(t, ok)
	d := zero.With("z-index", "2").With("align-items", "center")
	assert.Equal(t, "align-items: center; z-index: 2", d.Inline())
	assert.Equal(t, "align-items: center; z-index: 2;", d.Block())
	assert.Equal(t, d.Inline(), d.String())
}

func TestLonghand(t *testing.T) {
	d := style.Declare(
		style.KV("margin", "1px 2px 3px"),
		style.KV("border-radius", "4px"),
		style.KV("padding", "1 2 3 4 5"),
		style.KV("color", "red"),
	)
	l := d.Longhand()
	assert.Equal(t, style.Property("2px"), get(l, "margin-left"))
	assert.Equal(t, style.Property("3px"), get(l, "margin-bottom"))
	assert.Equal(t, style.Property("4px"), get(l, "border-bottom-left-radius"))
	assert.Equal(t, style.Property("1 2 3 4 5"), get(l, "padding"))
	assert.False(t, l.IsSet("margin"))
	assert.True(t, d.IsSet("margin"))
}

func get(d style.Declarations, key string) style.Property {
	p, _ := d.Get(key)
	return p
}

func TestSplitCompound(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("padding", "3px")
	assert.NoError(t, err)
	assert.Len(t, kvs, 4)
	assert.Equal(t, "padding-top: 3px", kvs[0].String())
	_, err = style.SplitCompoundProperty("color", "red")
	assert.Error(t, err)
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.style")
	defer teardown()
	//
	assert.Equal(t, style.PGMargins, style.GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, style.PGX, style.GroupNameFromPropertyKey("-webkit-foo"))
	g := style.Declare(style.KV("color", "red"), style.KV("margin-top", "0"), style.KV("margin-left", "1")).Group()
	assert.Len(t, g[style.PGMargins], 2)
	assert.Equal(t, "margin-left", g[style.PGMargins][0].Key)
	assert.Len(t, g[style.PGColor], 1)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "background-color", style.BackgroundColor.String())
	assert.Equal(t, style.PGColor, style.Color.Group())
	n, ok := style.Lookup("z-index")
	assert.True(t, ok)
	assert.Equal(t, style.ZIndex, n)
	_, ok = style.Lookup("no-such-thing")
	assert.False(t, ok)
	assert.Equal(t, "", style.Name(60000).String())
	assert.Equal(t, style.PGX, style.Name(60000).Group())
}

func TestProperty(t *testing.T) {
	assert.True(t, style.Property("initial").IsInitial())
	assert.True(t, style.Property("inherit").IsInherit())
	assert.True(t, style.NullStyle.IsEmpty())
}
