package douceuradapter_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/mongrel/style"
	"github.com/npillmayer/mongrel/stylesheet/douceuradapter"
)

const sampleCSS = `
p  { margin: 0; color: red }
@media print { p { color: black } }
h1, h2 {
	font-weight: bold !important;
	font-family: "Helvetica Neue", sans-serif;
}
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.stylesheet")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(sampleCSS)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "p { color: red; margin: 0; }", rules[0].Render())
	assert.Equal(t, "h1, h2", rules[1].Selector())
	assert.Equal(t, style.Property("bold !important"), rules[1].Value("font-weight"))
}

func TestParseNormalizesOrder(t *testing.T) {
	a, err := douceuradapter.Parse(".x { margin: 0; color: red; }")
	require.NoError(t, err)
	b, err := douceuradapter.Parse(".x{color:red;margin:0}")
	require.NoError(t, err)
	assert.Equal(t, a.Render(), b.Render())
	assert.Equal(t, ".x { color: red; margin: 0; }", a.Render())
}

func TestParseDeclarations(t *testing.T) {
	d, err := douceuradapter.ParseDeclarations("margin: 0 auto; color: blue")
	require.NoError(t, err)
	assert.Equal(t, "color: blue; margin: 0 auto", d.Inline())
	v, ok := d.Get("margin")
	assert.True(t, ok)
	assert.Equal(t, style.Property("0 auto"), v)
}

func TestParseDeclarationsTermination(t *testing.T) {
	for _, text := range []string{"color: blue", "color: blue;", "  color: blue  "} {
		d, err := douceuradapter.ParseDeclarations(text)
		require.NoError(t, err)
		assert.Equal(t, "color: blue", d.Inline(), "declarations %q", text)
	}
	d, err := douceuradapter.ParseDeclarations("margin: 0; color: blue")
	require.NoError(t, err)
	assert.Equal(t, "color: blue; margin: 0", d.Inline())
	d, err = douceuradapter.ParseDeclarations("   ")
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestConvertNil(t *testing.T) {
	assert.True(t, douceuradapter.Convert(nil).Empty())
}
