package stylesheet_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mongrel/style"
	"github.com/npillmayer/mongrel/stylesheet"
)

func TestRuleRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.stylesheet")
	defer teardown()
	//
	r := stylesheet.NewRule(".a", style.KV("color", "red"), style.KV("margin", "0"))
	assert.Equal(t, ".a { color: red; margin: 0; }", r.Render())
}

func TestRuleDeclarationsAreSorted(t *testing.T) {
	r1 := stylesheet.NewRule("p", style.KV("margin", "0"), style.KV("color", "red"))
	r2 := stylesheet.NewRule("p").With("color", "red").With("margin", "0")
	assert.Equal(t, "p { color: red; margin: 0; }", r1.Render())
	assert.Equal(t, r1.Render(), r2.Render())
	assert.Equal(t, []string{"color", "margin"}, r1.Properties())
	assert.Equal(t, style.Property("0"), r1.Value("margin"))
	assert.Equal(t, style.NullStyle, r1.Value("padding"))
}

func TestEmptyRule(t *testing.T) {
	assert.Equal(t, "h1 { }", stylesheet.NewRule("h1").Render())
}

func TestRuleIsImmutable(t *testing.T) {
	r := stylesheet.NewRule("p", style.KV("color", "red"))
	_ = r.With("color", "blue")
	assert.Equal(t, "p { color: red; }", r.Render())
}

func TestSheetRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.stylesheet")
	defer teardown()
	//
	sheet := stylesheet.New(
		stylesheet.NewRule(".a", style.KV("color", "red")),
		stylesheet.NewRule("#b", style.KV("margin", "0"), style.KV("display", "none")),
	)
	assert.Equal(t, ".a { color: red; } #b { display: none; margin: 0; }", sheet.Render())
	assert.Equal(t, "", stylesheet.Sheet{}.Render())
	assert.True(t, stylesheet.Sheet{}.Empty())
}

func TestSheetAppend(t *testing.T) {
	base := stylesheet.New(stylesheet.NewRule("p", style.KV("margin", "0")))
	ext := base.Append(stylesheet.NewRule("p", style.KV("color", "red")))
	assert.Len(t, base.Rules(), 1)
	assert.Len(t, ext.Rules(), 2)
	assert.Len(t, ext.RulesBySelector("p"), 2)
	both := base.AppendRules(ext)
	assert.Len(t, both.Rules(), 3)
	assert.Equal(t, "p { margin: 0; } p { margin: 0; } p { color: red; }", both.String())
}

func TestRuleFor(t *testing.T) {
	d := style.Declarations{}.With("font-weight", "bold")
	r := stylesheet.RuleFor("b", d)
	assert.Equal(t, "b { font-weight: bold; }", r.String())
	assert.Equal(t, "b", r.Selector())
	assert.Equal(t, 1, r.Declarations().Len())
}
