package parser

import (
	"testing"

	"github.com/go-galley/galley/utils"
	tu "github.com/go-galley/galley/utils/testutils"
)

func parseOneDeclarationString(css string, skipComments bool) Compound {
	l := tokenizeString(css, skipComments)
	return ParseOneDeclaration(l)
}

func TestOneDeclaration(t *testing.T) {
	decl := parseOneDeclarationString("color: red", true).(Declaration)
	tu.AssertEqual(t, decl.Name, "color")
	tu.AssertEqual(t, decl.Important, false)
	tu.AssertEqual(t, dump(decl.Value), "ws;ident red")

	decl = parseOneDeclarationString("margin: 0 auto !important", true).(Declaration)
	tu.AssertEqual(t, decl.Name, "margin")
	tu.AssertEqual(t, decl.Important, true)
	tu.AssertEqual(t, dump(decl.Value), "ws;num 0;ws;ident auto;ws")

	// missing colon
	err := parseOneDeclarationString("color red", true).(ParseError)
	tu.AssertEqual(t, err.kind, errInvalid)

	// not an identifier
	_, isError := parseOneDeclarationString("12: red", true).(ParseError)
	tu.AssertEqual(t, isError, true)

	_, isError = parseOneDeclarationString(" ", true).(ParseError)
	tu.AssertEqual(t, isError, true)
}

func TestDeclarationList(t *testing.T) {
	result := ParseDeclarationListString("color: red; width: 20px;; font-weight: bold", true, true)
	tu.AssertEqual(t, len(result), 3)
	names := make([]string, len(result))
	for i, decl := range result {
		names[i] = decl.(Declaration).Name
	}
	tu.AssertEqual(t, names, []string{"color", "width", "font-weight"})

	// a bad declaration does not abort the rest of the list
	result = ParseDeclarationListString("color red; width: 20px", true, true)
	tu.AssertEqual(t, len(result), 2)
	_, isError := result[0].(ParseError)
	tu.AssertEqual(t, isError, true)
	tu.AssertEqual(t, result[1].(Declaration).Name, "width")
}

func TestStylesheetRules(t *testing.T) {
	rules := ParseStylesheetBytes([]byte("div { color: red } .note, #x { margin: 0 }"), true, true)
	tu.AssertEqual(t, len(rules), 2)

	rule := rules[0].(QualifiedRule)
	tu.AssertEqual(t, dump(rule.Prelude), "ident div;ws")
	tu.AssertEqual(t, dump(rule.Content), "ws;ident color;:;ws;ident red;ws")

	rule = rules[1].(QualifiedRule)
	tu.AssertEqual(t, dump(rule.Prelude), ".;ident note;,;ws;#id x;ws")

	// top-level HTML comment markers are ignored in stylesheets
	rules = ParseStylesheetBytes([]byte("<!-- div{} -->"), true, true)
	tu.AssertEqual(t, len(rules), 1)
	_, isRule := rules[0].(QualifiedRule)
	tu.AssertEqual(t, isRule, true)

	// a rule without a block is an error
	rules = ParseStylesheetBytes([]byte("div"), true, true)
	_, isError := rules[0].(ParseError)
	tu.AssertEqual(t, isError, true)
}

func TestAtRules(t *testing.T) {
	rules := ParseStylesheetBytes([]byte("@media print { div { width: 10px } } p { color: blue }"), true, true)
	tu.AssertEqual(t, len(rules), 2)

	atRule := rules[0].(AtRule)
	tu.AssertEqual(t, atRule.AtKeyword, "media")
	tu.AssertEqual(t, dump(atRule.Prelude), "ws;ident print;ws")

	// an at-rule ended by a semicolon has no content
	rules = ParseStylesheetBytes([]byte("@import 'other.css'; p {}"), true, true)
	atRule = rules[0].(AtRule)
	tu.AssertEqual(t, atRule.AtKeyword, "import")
	tu.AssertEqual(t, atRule.Content == nil, true)
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected Color
	}{
		{"red", Color{Type: ColorRGBA, RGBA: RGBA{1, 0, 0, 1}}},
		{"Lime", Color{Type: ColorRGBA, RGBA: RGBA{0, 1, 0, 1}}},
		{"#0f0", Color{Type: ColorRGBA, RGBA: RGBA{0, 1, 0, 1}}},
		{"#00ff00", Color{Type: ColorRGBA, RGBA: RGBA{0, 1, 0, 1}}},
		{"#00ff0080", Color{Type: ColorRGBA, RGBA: RGBA{0, 1, 0, utils.Fl(0x80) / 255}}},
		{"transparent", Color{Type: ColorRGBA}},
		{"currentColor", Color{Type: ColorCurrentColor}},
		{"#00ff0", Color{}},  // wrong digit count
		{"#zzz", Color{}},    // not hexadecimal
		{"unknown", Color{}}, // not a keyword
		{"", Color{}},
	} {
		got := ParseColorString(test.css)
		tu.AssertEqual(t, got, test.expected)
	}

	tu.AssertEqual(t, ParseColorString("blue").IsNone(), false)
	tu.AssertEqual(t, ParseColorString("not-a-color").IsNone(), true)
}
