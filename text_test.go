package mongrel_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/mongrel"
)

func TestPlainText(t *testing.T) {
	assert.Equal(t, "x", mongrel.Text("x").Render())
	assert.Equal(t, "a &lt; b", mongrel.Text("a < b").Render())
	assert.Equal(t, "7 items", mongrel.Textf("%d items", 7).Render())
}

func TestWrapperOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.markup")
	defer teardown()
	//
	assert.Equal(t, "<b><i>x</i></b>", mongrel.Text("x").Bold().Italic().Render())
	assert.Equal(t, "<i><b>x</b></i>", mongrel.Text("x").Italic().Bold().Render())
	assert.Equal(t, "<h2><u><s>x</s></u></h2>",
		mongrel.Text("x").Heading(2).Underline().Strikethrough().Render())
}

func TestWrapperCopyOnModify(t *testing.T) {
	base := mongrel.Text("x").Bold()
	a := base.Italic()
	b := base.Underline()
	assert.Equal(t, "<b>x</b>", base.Render())
	assert.Equal(t, "<b><i>x</i></b>", a.Render())
	assert.Equal(t, "<b><u>x</u></b>", b.Render())
	assert.Equal(t, []string{"b", "i"}, a.Wrappers())
}

func TestAttributesGoToOutermostWrapper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.markup")
	defer teardown()
	//
	x := mongrel.Text("x").Bold().Italic().WithAttribute("id", "t1")
	assert.Equal(t, `<b id="t1"><i>x</i></b>`, x.Render())
	y := mongrel.Text("x").Link("/a").Bold().WithStyle("color", "red")
	assert.Equal(t, `<a style="color: red" href="/a"><b>x</b></a>`, y.Render())
	z := mongrel.Text("x").Link("/a").WithAttribute("href", "/b")
	assert.Equal(t, `<a href="/b">x</a>`, z.Render(), "own attributes win over wrapper attributes")
}

func TestSynthesizedSpan(t *testing.T) {
	x := mongrel.Text("x").WithAttribute("class", "hint")
	assert.Equal(t, `<span class="hint">x</span>`, x.Render())
	y := mongrel.Text("x").WithStyle("color", "red")
	assert.Equal(t, `<span style="color: red">x</span>`, y.Render())
}

func TestWrappersWithAttributes(t *testing.T) {
	assert.Equal(t, `<abbr title="HyperText Markup Language">HTML</abbr>`,
		mongrel.Text("HTML").Abbreviation("HyperText Markup Language").Render())
	assert.Equal(t, `<a href="http://x.com" target="_blank">go</a>`,
		mongrel.Text("go").Link("http://x.com", "_blank").Render())
	assert.Equal(t, `<a href="http://x.com">go</a>`,
		mongrel.Text("go").Link("http://x.com", "").Render())
	assert.Equal(t, `<q cite="http://src">hm</q>`, mongrel.Text("hm").Quote("http://src").Render())
	assert.Equal(t, `<q>hm</q>`, mongrel.Text("hm").Quote("").Render())
	assert.Equal(t, `<mark x="1">t</mark>`,
		mongrel.Text("t").Wrap("mark", mongrel.Attr{Key: "x", Value: "1"}, mongrel.Attr{}).Render())
}

func TestHeadingLevelsAreClamped(t *testing.T) {
	assert.Equal(t, "<h1>x</h1>", mongrel.Text("x").Heading(0).Render())
	assert.Equal(t, "<h6>x</h6>", mongrel.Text("x").Heading(9).Render())
	assert.Equal(t, "<h3>x</h3>", mongrel.Text("x").Heading(3).Render())
}

func TestFormattingWrappers(t *testing.T) {
	x := mongrel.Text("x")
	cases := map[string]mongrel.TextNode{
		"<em>x</em>":         x.Emphasis(),
		"<strong>x</strong>": x.Strong(),
		"<code>x</code>":     x.Code(),
		"<small>x</small>":   x.Small(),
		"<mark>x</mark>":     x.Mark(),
		"<sub>x</sub>":       x.Subscript(),
		"<sup>x</sup>":       x.Superscript(),
		"<del>x</del>":       x.Deleted(),
		"<ins>x</ins>":       x.Inserted(),
		"<kbd>x</kbd>":       x.Keyboard(),
		"<p>x</p>":           x.Paragraph(),
	}
	for expected, node := range cases {
		assert.Equal(t, expected, node.Render())
	}
}

func TestWrappedTextIsEscaped(t *testing.T) {
	x := mongrel.Text(`"a" & <b>`).Bold().WithAttribute("title", "'t'")
	assert.Equal(t, `<b title="&apos;t&apos;">&quot;a&quot; &amp; &lt;b&gt;</b>`, x.Render())
}
