package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-galley/galley/utils"
	tu "github.com/go-galley/galley/utils/testutils"
)

// dump renders tokens in a compact form, ignoring positions.
func dump(tokens []Token) string {
	chunks := make([]string, len(tokens))
	for i, token := range tokens {
		switch token := token.(type) {
		case Whitespace:
			chunks[i] = "ws"
		case Comment:
			chunks[i] = "/*" + token.Value + "*/"
		case Ident:
			chunks[i] = "ident " + token.Value
		case AtKeyword:
			chunks[i] = "@" + token.Value
		case Hash:
			if token.IsIdentifier {
				chunks[i] = "#id " + token.Value
			} else {
				chunks[i] = "# " + token.Value
			}
		case String:
			chunks[i] = fmt.Sprintf("%q", token.Value)
		case Number:
			chunks[i] = "num " + token.Representation
		case Percentage:
			chunks[i] = "pct " + token.Representation
		case Dimension:
			chunks[i] = "dim " + token.Representation + token.Unit
		case Literal:
			chunks[i] = token.Value
		case CurlyBracketsBlock:
			chunks[i] = "{" + dump(token.Arguments) + "}"
		case SquareBracketsBlock:
			chunks[i] = "[" + dump(token.Arguments) + "]"
		case ParenthesesBlock:
			chunks[i] = "(" + dump(token.Arguments) + ")"
		case ParseError:
			chunks[i] = "error " + token.kind
		default:
			chunks[i] = "???"
		}
	}
	return strings.Join(chunks, ";")
}

func TestTokenizeBasic(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected string
	}{
		{"", ""},
		{"div", "ident div"},
		{"display:block", "ident display;:;ident block"},
		{"font-size : 16px", "ident font-size;ws;:;ws;dim 16px"},
		{"margin:0", "ident margin;:;num 0"},
		{"width:50%", "ident width;:;pct 50"},
		{"line-height:1.5", "ident line-height;:;num 1.5"},
		{"top:-3.4e2px", "ident top;:;dim -3.4e2px"},
		{"z:+12", "ident z;:;num +12"},
		{".note", ".;ident note"},
		{"#intro", "#id intro"},
		{"#00ff00", "# 00ff00"},
		{"*", "*"},
		{"a , b", "ident a;ws;,;ws;ident b"},
		{"@media print", "@media;ws;ident print"},
		{`content:"a b"`, `ident content;:;"a b"`},
		{"content:'a b'", `ident content;:;"a b"`},
		{"PX:10PX", "ident PX;:;dim 10px"},
	} {
		got := dump(tokenizeString(test.css, true))
		tu.AssertEqual(t, got, test.expected)
	}
}

func TestTokenizeBlocks(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected string
	}{
		{"div{color:red}", "ident div;{ident color;:;ident red}"},
		{"a{b{c}}", "ident a;{ident b;{ident c}}"},
		{"[x] (y)", "[ident x];ws;(ident y)"},
		// unterminated blocks are closed at EOF
		{"div{color:red", "ident div;{ident color;:;ident red}"},
		{"a{b{", "ident a;{ident b;{}}"},
		// unmatched closing braces are errors, not crashes
		{"}a", "error };ident a"},
		{"rgb(0, 0, 0)", "ident rgb;(num 0;,;ws;num 0;,;ws;num 0)"},
	} {
		got := dump(tokenizeString(test.css, true))
		tu.AssertEqual(t, got, test.expected)
	}
}

func TestTokenizeStringsAndComments(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected string
	}{
		{`"quoted \"escape\""`, `"quoted \"escape\""`},
		{`"unterminated`, `"unterminated";error eof-in-string`},
		{"\"bad\nstring\"", `error bad-string;ws;ident string;"";error eof-in-string`},
		{"/* note */a", "ident a"},
		{"/* unterminated", ""},
		{"a/**/b", "ident a;ident b"},
	} {
		got := dump(tokenizeString(test.css, true))
		tu.AssertEqual(t, got, test.expected)
	}

	// comments are kept on demand
	got := dump(tokenizeString("/* note */", false))
	tu.AssertEqual(t, got, "/* note */")
}

func TestTokenizeEscapesAndNull(t *testing.T) {
	// \0 is replaced by U+FFFD
	tokens := tokenizeString("a\x00b", true)
	tu.AssertEqual(t, len(tokens), 1)
	tu.AssertEqual(t, tokens[0].(Ident).Value, "a�b")

	// hex escape in an identifier
	tokens = tokenizeString(`\64 iv`, true)
	tu.AssertEqual(t, tokens[0].(Ident).Value, "div")
}

func TestTokenizePositions(t *testing.T) {
	tokens := tokenizeString("a\n  b", true)
	tu.AssertEqual(t, len(tokens), 3)
	tu.AssertEqual(t, tokens[0].Pos(), Pos{Line: 1, Column: 1})
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 2, Column: 3})

	// \r\n counts as a single newline
	tokens = tokenizeString("a\r\nb", true)
	tu.AssertEqual(t, tokens[2].Pos(), Pos{Line: 2, Column: 1})
}

func TestNumericValues(t *testing.T) {
	tokens := tokenizeString("12 1.5 -4px 50%", true)
	n := tokens[0].(Number)
	tu.AssertEqual(t, n.IsInteger, true)
	tu.AssertEqual(t, n.Int(), 12)

	f := tokens[2].(Number)
	tu.AssertEqual(t, f.IsInteger, false)
	tu.AssertEqual(t, f.Value, utils.Fl(1.5))

	d := tokens[4].(Dimension)
	tu.AssertEqual(t, d.Unit, "px")
	tu.AssertEqual(t, d.Value, utils.Fl(-4))

	p := tokens[6].(Percentage)
	tu.AssertEqual(t, p.Value, utils.Fl(50))
}
