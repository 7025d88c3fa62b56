package tree

import (
	"strings"
	"testing"

	tu "github.com/go-galley/galley/utils/testutils"
)

// describe returns a one-line summary of the children of `id`.
func describe(doc *Document, id NodeID) []string {
	var out []string
	for _, c := range doc.Children(id) {
		node := doc.Get(c)
		switch node.Type {
		case NodeElement:
			out = append(out, "<"+node.Data+">")
		case NodeText:
			out = append(out, node.Data)
		case NodeComment:
			out = append(out, "<!--"+node.Data+"-->")
		}
	}
	return out
}

// elementsNamed returns the elements with the given tag name, in
// document order.
func elementsNamed(doc *Document, tag string) (out []NodeID) {
	for id := NodeID(0); int(id) < doc.Len(); id++ {
		if node := doc.Get(id); node.Type == NodeElement && node.Data == tag {
			out = append(out, id)
		}
	}
	return out
}

func elementNamed(t *testing.T, doc *Document, tag string) NodeID {
	t.Helper()
	ids := elementsNamed(doc, tag)
	if len(ids) == 0 {
		t.Fatalf("no element <%s>", tag)
	}
	return ids[0]
}

func TestListItems(t *testing.T) {
	capt := tu.CaptureLogs()
	doc := Parse("<ul><li>a<li>b</ul>")
	capt.AssertNoLogs(t)

	tu.AssertEqual(t, describe(doc, 0), []string{"<ul>"})
	ul := elementNamed(t, doc, "ul")
	tu.AssertEqual(t, describe(doc, ul), []string{"<li>", "<li>"})
	for i, content := range []string{"a", "b"} {
		tu.AssertEqual(t, describe(doc, doc.Children(ul)[i]), []string{content})
	}
}

func TestNestedList(t *testing.T) {
	// an <li> only ends a sibling item, not an ancestor one
	doc := Parse("<ul><li><ul><li>a<li>b</ul><li>c</ul>")

	outer := elementNamed(t, doc, "ul")
	tu.AssertEqual(t, describe(doc, outer), []string{"<li>", "<li>"})
	first := doc.Children(outer)[0]
	tu.AssertEqual(t, describe(doc, first), []string{"<ul>"})
	inner := doc.Children(first)[0]
	tu.AssertEqual(t, describe(doc, inner), []string{"<li>", "<li>"})
	tu.AssertEqual(t, describe(doc, doc.Children(outer)[1]), []string{"c"})
}

func TestDefinitionList(t *testing.T) {
	doc := Parse("<dl><dt>x<dd>y<dt>z</dl>")

	dl := elementNamed(t, doc, "dl")
	tu.AssertEqual(t, describe(doc, dl), []string{"<dt>", "<dd>", "<dt>"})
	tu.AssertEqual(t, describe(doc, doc.Children(dl)[0]), []string{"x"})
	tu.AssertEqual(t, describe(doc, doc.Children(dl)[1]), []string{"y"})
	tu.AssertEqual(t, describe(doc, doc.Children(dl)[2]), []string{"z"})
}

func TestParagraphs(t *testing.T) {
	// a new paragraph or heading ends the open paragraph
	doc := Parse("<p>one<p>two<h1>three")

	tu.AssertEqual(t, describe(doc, 0), []string{"<p>", "<p>", "<h1>"})
	for i, content := range []string{"one", "two", "three"} {
		tu.AssertEqual(t, describe(doc, doc.Children(0)[i]), []string{content})
	}
}

func TestTableRows(t *testing.T) {
	// a new row ends both the pending cell and the row
	doc := Parse("<table><tr><td>a<td>b<tr><th>c</table>")

	table := elementNamed(t, doc, "table")
	tu.AssertEqual(t, describe(doc, table), []string{"<tr>", "<tr>"})
	rows := doc.Children(table)
	tu.AssertEqual(t, describe(doc, rows[0]), []string{"<td>", "<td>"})
	tu.AssertEqual(t, describe(doc, rows[1]), []string{"<th>"})
}

func TestEndTagPopThrough(t *testing.T) {
	// an end tag closes every element above the match
	doc := Parse("<div><span>inner</div>outer")

	tu.AssertEqual(t, describe(doc, 0), []string{"<div>", "outer"})
	div := elementNamed(t, doc, "div")
	tu.AssertEqual(t, describe(doc, div), []string{"<span>"})
	span := elementNamed(t, doc, "span")
	tu.AssertEqual(t, describe(doc, span), []string{"inner"})
}

func TestUnmatchedEndTag(t *testing.T) {
	capt := tu.CaptureLogs()
	doc := Parse("a</nope>b")
	capt.CheckMatch(t, []string{"nope"})

	// the stray end tag is dropped and the text runs are merged
	tu.AssertEqual(t, describe(doc, 0), []string{"ab"})
}

func TestVoidElements(t *testing.T) {
	capt := tu.CaptureLogs()
	defer capt.AssertNoLogs(t)

	doc := Parse("<p>a<br>b")
	p := elementNamed(t, doc, "p")
	tu.AssertEqual(t, describe(doc, p), []string{"a", "<br>", "b"})
	br := elementNamed(t, doc, "br")
	tu.AssertEqual(t, len(doc.Children(br)), 0)

	// self-closing syntax is honored on any element
	doc = Parse("<span/>x")
	tu.AssertEqual(t, describe(doc, 0), []string{"<span>", "x"})
}

func TestDoctype(t *testing.T) {
	doc := Parse("<!doctype html><html><body>t")

	tu.AssertEqual(t, describe(doc, 0), []string{"<!doctype>", "<html>"})
	doctype := doc.Get(doc.Children(0)[0])
	_, hasHTML := doctype.Attr("html")
	tu.AssertEqual(t, hasHTML, true)
	body := elementNamed(t, doc, "body")
	tu.AssertEqual(t, describe(doc, body), []string{"t"})
}

func TestCommentNode(t *testing.T) {
	doc := Parse("<div>a<!-- note -->b</div>")

	div := elementNamed(t, doc, "div")
	tu.AssertEqual(t, describe(doc, div), []string{"a", "<!-- note -->", "b"})
}

func TestContentBeforeHtml(t *testing.T) {
	doc := Parse("lead<html><body>x")

	tu.AssertEqual(t, describe(doc, 0), []string{"lead", "<html>"})
}

func TestAttributes(t *testing.T) {
	doc := Parse(`<div id="main" class="a b" hidden>`)

	node := doc.Get(elementNamed(t, doc, "div"))
	id, _ := node.Attr("id")
	tu.AssertEqual(t, id, "main")
	class, _ := node.Attr("class")
	tu.AssertEqual(t, class, "a b")
	_, hasHidden := node.Attr("hidden")
	tu.AssertEqual(t, hasHidden, true)
	_, hasOther := node.Attr("other")
	tu.AssertEqual(t, hasOther, false)
}

func TestLang(t *testing.T) {
	capt := tu.CaptureLogs()
	for _, test := range []struct {
		input string
		lang  string
	}{
		{`<html lang="en-US"><body>x`, "en-US"},
		{`<html lang="EN"><body>x`, "en"},
		{`<html><body>x`, ""},
		{`<p lang="fr">x`, ""}, // only the root html element is used
	} {
		doc := Parse(test.input)
		tu.AssertEqual(t, doc.Lang(), test.lang)
	}
	capt.AssertNoLogs(t)

	capt = tu.CaptureLogs()
	doc := Parse(`<html lang="not a lang"><body>x`)
	tu.AssertEqual(t, doc.Lang(), "")
	capt.CheckMatch(t, []string{"Invalid lang attribute"})
}

func TestTreeDump(t *testing.T) {
	doc := Parse(`<div id="main" hidden>Hello<!--c--></div>`)

	dump := TreeDump(doc)
	for _, part := range []string{
		"#document",
		`<div id="main" hidden>`,
		`"Hello"`,
		"<!--c-->",
	} {
		if !strings.Contains(dump, part) {
			t.Fatalf("missing %q in dump:\n%s", part, dump)
		}
	}
}
