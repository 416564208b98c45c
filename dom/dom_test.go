package dom_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/dom"
	"github.com/npillmayer/mongrel/style"
	"github.com/npillmayer/mongrel/stylesheet"
)

func sample() mongrel.Node {
	return mongrel.New("div").WithAttribute("class", "box").WithStyle("color", "red").
		WithChildren(
			mongrel.Text("Hello").Bold(),
			mongrel.Text("world"),
			mongrel.New("br"),
			mongrel.New("a").WithAttribute("href", "/x").WithChildren(mongrel.Text("link")),
		)
}

func TestConvertStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.dom")
	defer teardown()
	//
	root, err := dom.Convert(sample())
	require.NoError(t, err)
	assert.Equal(t, html.DocumentNode, root.Type)
	div := root.FirstChild
	require.NotNil(t, div)
	assert.Equal(t, atom.Div, div.DataAtom)
	assert.Equal(t, []html.Attribute{
		{Key: "style", Val: "color: red"},
		{Key: "class", Val: "box"},
	}, div.Attr)
	b := div.FirstChild
	assert.Equal(t, atom.B, b.DataAtom)
	assert.Equal(t, " ", b.NextSibling.Data)
	assert.Equal(t, "world", b.NextSibling.NextSibling.Data)
	assert.Equal(t, "Hello worldlink", dom.TextContent(root))
}

func TestConvertRendersLikeMarkup(t *testing.T) {
	root, err := dom.Convert(sample())
	require.NoError(t, err)
	out, err := dom.Render(root)
	require.NoError(t, err)
	// x/net/html writes void elements as <br/>
	assert.Equal(t, `<div style="color: red" class="box"><b>Hello</b> world<br/><a href="/x">link</a></div>`, out)
}

func TestFragmentsAreSpliced(t *testing.T) {
	nodes, err := dom.Nodes(mongrel.Fragment(mongrel.New("p"), mongrel.Raw("<i>x</i>")), mongrel.New("hr"))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, atom.P, nodes[0].DataAtom)
	assert.Equal(t, atom.I, nodes[1].DataAtom)
	assert.Equal(t, atom.Hr, nodes[2].DataAtom)
	assert.Nil(t, nodes[0].Parent)

	root, err := dom.Convert(mongrel.New("p").WithChildren(mongrel.Text("a"), mongrel.Fragment(mongrel.Text("b"))))
	require.NoError(t, err)
	assert.Equal(t, "a b", dom.TextContent(root))
}

func TestSelect(t *testing.T) {
	list := mongrel.New("ul").WithChildren(mongrel.Map([]string{"a", "b", "c"}, func(s string) mongrel.Content {
		return mongrel.New("li").WithAttribute("data-key", s).WithChildren(mongrel.Text(s))
	}))
	found, err := dom.Select(list, `li[data-key="b"]`)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b", dom.TextContent(found[0]))
	all, err := dom.Select(list, "ul > li")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	_, err = dom.Select(list, "li[")
	assert.Error(t, err)
}

func TestStyleSheetRoundTrip(t *testing.T) {
	sheet := stylesheet.New(
		stylesheet.NewRule("p", style.KV("margin", "0")),
		stylesheet.NewRule(".a > b", style.KV("color", "red"), style.KV("font-weight", "bold")),
	)
	page := mongrel.Fragment(
		mongrel.New("style").WithChildren(mongrel.Raw(sheet.Render())),
		mongrel.New("p").WithChildren(mongrel.Text("x")),
	)
	root, err := dom.Convert(page)
	require.NoError(t, err)
	st := dom.FindElement(atom.Style, root)
	require.NotNil(t, st)
	assert.Equal(t, html.TextNode, st.FirstChild.Type)
	extracted, err := dom.ExtractStyleSheet(root)
	require.NoError(t, err)
	assert.Equal(t, sheet.Render(), extracted.Render())
	assert.Nil(t, dom.FindElement(atom.Table, root))
}
