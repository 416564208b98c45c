package mongrel_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/mongrel"
)

func TestAdjacentTextIsSpaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.markup")
	defer teardown()
	//
	words := []string{"a", "b"}
	p := mongrel.Fragment(mongrel.Map(words, func(w string) mongrel.Content {
		return mongrel.Text(w)
	}))
	assert.Equal(t, "a b", p.Render())
	q := mongrel.Fragment(mongrel.Text("a"), mongrel.New("div"))
	assert.Equal(t, "a<div></div>", q.Render())
}

func TestFragmentsAreSplicedLikeGroups(t *testing.T) {
	frag := mongrel.New("p").WithChildren(mongrel.Text("a"), mongrel.Fragment(mongrel.Text("b")))
	grp := mongrel.New("p").WithChildren(mongrel.Text("a"), mongrel.Group{mongrel.Text("b")})
	assert.Equal(t, "<p>a b</p>", frag.Render())
	assert.Equal(t, grp.Render(), frag.Render())
	nested := mongrel.Fragment(mongrel.Fragment(mongrel.Text("x"), nil), mongrel.Text("y"))
	assert.Len(t, mongrel.Flatten(nested), 2)
	assert.Equal(t, "x y", nested.Render())
	assert.Len(t, mongrel.Flatten(mongrel.Fragment()), 0)
}

func TestSpacingOnlyBetweenTexts(t *testing.T) {
	p := mongrel.New("p").WithChildren(
		mongrel.Text("Hello"),
		mongrel.Text("world").Bold(),
		mongrel.Raw("<br>"),
		mongrel.Text("again"),
		mongrel.New("span"),
		mongrel.Text("end"),
	)
	assert.Equal(t, "<p>Hello <b>world</b><br>again<span></span>end</p>", p.Render())
}

func TestFlattenNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mongrel.markup")
	defer teardown()
	//
	a, b, c, d := mongrel.Raw("a"), mongrel.Raw("b"), mongrel.Raw("c"), mongrel.Raw("d")
	flat := mongrel.Flatten(a, mongrel.Group{b, nil, mongrel.Group{c, mongrel.Group{}}}, nil, d)
	require.Len(t, flat, 4)
	assert.Equal(t, []mongrel.Content{a, b, c, d}, flat)
}

func TestFlattenEmpty(t *testing.T) {
	flat := mongrel.Flatten()
	assert.NotNil(t, flat)
	assert.Len(t, flat, 0)
	assert.Equal(t, "", mongrel.Group{}.Render())
	assert.Equal(t, "<div></div>", mongrel.New("div").WithChildren().Render())
	assert.Equal(t, "<div></div>", mongrel.New("div").WithChildren(nil, mongrel.Group{}).Render())
}

func TestConditionals(t *testing.T) {
	loggedIn := false
	n := mongrel.New("nav").WithChildren(
		mongrel.If(loggedIn, mongrel.Text("Logout")),
		mongrel.IfElse(loggedIn, mongrel.Text("Profile"), mongrel.Text("Login")),
	)
	assert.Equal(t, "<nav>Login</nav>", n.Render())
	require.Len(t, n.Children(), 1)
}

func TestGroupRendersWithSpacing(t *testing.T) {
	g := mongrel.Group{mongrel.Text("a"), mongrel.Group{mongrel.Text("b"), mongrel.Text("c")}}
	assert.Equal(t, "a b c", g.Render())
}

func TestTextSpacingAcrossGroups(t *testing.T) {
	n := mongrel.New("p").WithChildren(
		mongrel.Text("one"),
		mongrel.Group{mongrel.Text("two")},
		mongrel.If(true, mongrel.Text("three")),
	)
	assert.Equal(t, "<p>one two three</p>", n.Render())
}
