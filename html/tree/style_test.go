package tree

import (
	"testing"

	pa "github.com/go-galley/galley/css/parser"
	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/utils"
	tu "github.com/go-galley/galley/utils/testutils"
)

// styledDoc parses `content` and resolves the styles of its elements.
func styledDoc(t *testing.T, content string) *Document {
	t.Helper()
	html, err := NewHTML(utils.InputString(content), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	html.GetAllComputedStyles()
	return html.Document
}

// styleOf returns the computed style of the first <tag> element.
func styleOf(t *testing.T, doc *Document, tag string) pr.Properties {
	t.Helper()
	style := doc.Get(elementNamed(t, doc, tag)).Style
	if style == nil {
		t.Fatalf("element <%s> has no resolved style", tag)
	}
	return style
}

func red() pr.Color  { return pr.Color(pa.ParseColorString("red")) }
func blue() pr.Color { return pr.Color(pa.ParseColorString("blue")) }

func TestUserAgentStyle(t *testing.T) {
	capt := tu.CaptureLogs()
	defer capt.AssertNoLogs(t)

	doc := styledDoc(t, `<html><head><title>t</title></head><body><p>x<span>y</span></p>`)

	tu.AssertEqual(t, styleOf(t, doc, "head").GetDisplay(), pr.DNone)
	tu.AssertEqual(t, styleOf(t, doc, "title").GetDisplay(), pr.DNone)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetDisplay(), pr.DBlock)
	tu.AssertEqual(t, styleOf(t, doc, "span").GetDisplay(), pr.DInline)

	body := styleOf(t, doc, "body")
	tu.AssertEqual(t, body.GetDisplay(), pr.DBlock)
	tu.AssertEqual(t, body.GetMarginTop(), pr.FToV(16))
	tu.AssertEqual(t, body.GetMarginLeft(), pr.FToV(16))
}

func TestHeadings(t *testing.T) {
	doc := styledDoc(t, `<h1>big</h1><h6>small</h6><p>normal`)

	h1 := styleOf(t, doc, "h1")
	tu.AssertEqual(t, h1.GetFontSize(), pr.FToV(40))
	tu.AssertEqual(t, h1.GetFontWeight(), pr.Int(700))
	h6 := styleOf(t, doc, "h6")
	tu.AssertEqual(t, h6.GetFontSize(), pr.FToV(12))
	p := styleOf(t, doc, "p")
	tu.AssertEqual(t, p.GetFontSize(), pr.FToV(16))
	tu.AssertEqual(t, p.GetFontWeight(), pr.Int(400))
}

func TestCascadeSpecificity(t *testing.T) {
	capt := tu.CaptureLogs()
	defer capt.AssertNoLogs(t)

	// a class selector always beats a tag selector,
	// whatever the rule order
	for _, css := range []string{
		"div { color: red } .note { color: blue }",
		".note { color: blue } div { color: red }",
	} {
		doc := styledDoc(t, "<style>"+css+`</style><div class="note">x</div>`)
		tu.AssertEqual(t, styleOf(t, doc, "div").GetColor(), blue())
	}
}

func TestCascadeSourceOrder(t *testing.T) {
	// on equal specificity, the last declaration wins
	doc := styledDoc(t, `<style>p { color: red } p { color: blue }</style><p>x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())

	// also across stylesheets
	doc = styledDoc(t, `<style>p { color: blue }</style><style>p { color: red }</style><p>x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), red())
}

func TestCompoundSelector(t *testing.T) {
	doc := styledDoc(t, `<style>div.note { color: red }</style>
		<div class="note">a</div><p class="note">b</p><section>c</section>`)

	// both simple selectors must match the same element
	tu.AssertEqual(t, styleOf(t, doc, "div").GetColor(), red())
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), pr.InitialValues.GetColor())
	tu.AssertEqual(t, styleOf(t, doc, "section").GetColor(), pr.InitialValues.GetColor())
}

func TestDescendantSelector(t *testing.T) {
	doc := styledDoc(t, `<style>div p { color: red }</style>
		<div><section><p>inside</p></section></div><p>outside</p>`)

	ps := elementsNamed(doc, "p")
	tu.AssertEqual(t, len(ps), 2)
	tu.AssertEqual(t, doc.Get(ps[0]).Style.GetColor(), red())
	tu.AssertEqual(t, doc.Get(ps[1]).Style.GetColor(), pr.InitialValues.GetColor())
}

func TestInlineStyle(t *testing.T) {
	// the style attribute wins over any stylesheet rule
	doc := styledDoc(t, `<style>p { color: red }</style><p style="color: blue">x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())
}

func TestImportant(t *testing.T) {
	// !important in a stylesheet wins over a normal inline declaration
	doc := styledDoc(t, `<style>p { color: red !important }</style><p style="color: blue">x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), red())

	// but not over an !important one
	doc = styledDoc(t, `<style>p { color: red !important }</style><p style="color: blue !important">x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())
}

func TestInheritance(t *testing.T) {
	doc := styledDoc(t, `<div style="color: red; width: 50px; font-size: 20px"><p>x</p></div>`)

	div, p := styleOf(t, doc, "div"), styleOf(t, doc, "p")
	tu.AssertEqual(t, div.GetWidth(), pr.FToV(50))

	// color and font-size are inherited, width is not
	tu.AssertEqual(t, p.GetColor(), red())
	tu.AssertEqual(t, p.GetFontSize(), pr.FToV(20))
	tu.AssertEqual(t, p.GetWidth(), pr.SToV("auto"))
}

func TestInheritKeyword(t *testing.T) {
	doc := styledDoc(t, `<div style="width: 50px"><p style="width: inherit">x</p></div>`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetWidth(), pr.FToV(50))

	// inherit on an element without parent element falls back
	// to the initial value
	doc = styledDoc(t, `<p style="width: inherit">x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetWidth(), pr.SToV("auto"))
}

func TestInitialKeyword(t *testing.T) {
	doc := styledDoc(t, `<div style="color: red"><p style="color: initial">x</p></div>`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), pr.InitialValues.GetColor())
}

// physical units are normalized to pixels at computed-value time
func TestPhysicalUnits(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	doc := styledDoc(t, `<style>p { font-size: 12pt; margin-top: 1in }</style><p>x</p>`)
	style := styleOf(t, doc, "p")
	tu.AssertEqual(t, style.GetFontSize(), pr.FToV(16))
	tu.AssertEqual(t, style.GetMarginTop(), pr.FToV(96))
}

func TestCurrentColor(t *testing.T) {
	doc := styledDoc(t, `<div style="color: red"><p style="background-color: currentColor">x</p></div>`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetBackgroundColor(), red())

	// color: currentColor behaves as inherit
	doc = styledDoc(t, `<div style="color: blue"><p style="color: currentColor">x</p></div>`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())
}

func TestInvalidDeclarations(t *testing.T) {
	capt := tu.CaptureLogs()
	doc := styledDoc(t, `<style>p { colour: red; color: ljzk }</style><p>x`)
	capt.CheckMatch(t, []string{"unknown property colour", "invalid or unsupported values"})

	// invalid declarations fall back per the cascade
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), pr.InitialValues.GetColor())
}

func TestStylesheetLink(t *testing.T) {
	capt := tu.CaptureLogs()
	defer capt.AssertNoLogs(t)

	doc := styledDoc(t, `<link rel="stylesheet" href="data:text/css,p{color:red}"><p>x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), red())

	// alternate stylesheets are not applied
	doc = styledDoc(t, `<link rel="alternate stylesheet" href="data:text/css,p{color:red}"><p>x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), pr.InitialValues.GetColor())
}

func TestBrokenStylesheetLink(t *testing.T) {
	capt := tu.CaptureLogs()
	doc := styledDoc(t, `<link rel="stylesheet" href="file:///galley-missing.css">
		<style>p { color: blue }</style><p>x`)
	capt.CheckMatch(t, []string{"Failed to load stylesheet at"})

	// a failing sheet is skipped, the others still apply
	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())
}

func TestStylesheetOrigins(t *testing.T) {
	// a document sheet beats the user agent default
	doc := styledDoc(t, `<style>head { display: block }</style><html><head><title>t</title></head><body>x`)
	tu.AssertEqual(t, styleOf(t, doc, "head").GetDisplay(), pr.DBlock)
}

func TestDisplayNone(t *testing.T) {
	doc := styledDoc(t, `<style>p { display: none }</style><p>x`)
	tu.AssertEqual(t, styleOf(t, doc, "p").GetDisplay(), pr.DNone)
}

func TestAtRuleIgnored(t *testing.T) {
	capt := tu.CaptureLogs()
	doc := styledDoc(t, `<style>@media print { p { color: red } } p { color: blue }</style><p>x`)
	capt.CheckMatch(t, []string{"at-rule"})

	tu.AssertEqual(t, styleOf(t, doc, "p").GetColor(), blue())
}
