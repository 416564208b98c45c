package markupdbg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/mongrel"
	"github.com/npillmayer/mongrel/markupdbg"
	"github.com/npillmayer/mongrel/style"
)

func sample() mongrel.Content {
	return mongrel.New("div").WithAttribute("class", "box").
		WithStyle("margin", "1px 2px").WithStyle("color", "red").
		WithChildren(
			mongrel.Text("Hello").Bold(),
			mongrel.New("br"),
			mongrel.Raw("<!-- x -->"),
		)
}

func TestDump(t *testing.T) {
	out := markupdbg.Dump(sample())
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], `<div> style="color: red; margin: 1px 2px" class="box"`)
	assert.Contains(t, lines[2], `"Hello" [b]`)
	assert.Contains(t, lines[3], "<br>")
	assert.Contains(t, lines[4], "[raw]")
}

func TestDumpFragment(t *testing.T) {
	out := markupdbg.Dump(mongrel.New("p").WithChildren(mongrel.Fragment(mongrel.Text("a"), mongrel.Text("b"))))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "<p>")
	assert.Contains(t, lines[2], `"a"`)
	assert.Contains(t, lines[3], `"b"`)
}

func TestToGraphViz(t *testing.T) {
	var b strings.Builder
	err := markupdbg.ToGraphViz(sample(), &b, markupdbg.GraphParams{})
	require.NoError(t, err)
	dot := b.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="div"`)
	assert.Contains(t, dot, "node00001 -> node0")
	assert.Contains(t, dot, ">Margins<")
	assert.Contains(t, dot, "margin-left:")
	assert.Contains(t, dot, ">Color<")
}

func TestToGraphVizGroups(t *testing.T) {
	var b strings.Builder
	err := markupdbg.ToGraphViz(sample(), &b, markupdbg.GraphParams{
		StyleGroups: []string{style.PGColor},
	})
	require.NoError(t, err)
	assert.NotContains(t, b.String(), "Margins")
	assert.Contains(t, b.String(), "Color")
}
