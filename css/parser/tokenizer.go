package parser

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-galley/galley/utils"
)

var (
	numberRe    = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)
	hexEscapeRe = regexp.MustCompile(`^([0-9A-Fa-f]{1,6})[ \n\t]?`)
)

// openBlock remembers where an unclosed {}, [] or () block started,
// and the tokens accumulated so far in its parent.
type openBlock struct {
	parent  []Token
	pos     Pos
	endChar byte // endChar of the parent, to restore when closing
}

func closeBlock(pos Pos, endChar byte, arguments []Token) Token {
	switch endChar {
	case '}':
		return CurlyBracketsBlock{pos: pos, Arguments: arguments}
	case ']':
		return SquareBracketsBlock{pos: pos, Arguments: arguments}
	case ')':
		return ParenthesesBlock{pos: pos, Arguments: arguments}
	default:
		panic(fmt.Sprintf("unexpected block end char %d", endChar))
	}
}

func tokenizeString(css string, skipComments bool) []Token {
	return Tokenize([]byte(css), skipComments)
}

// Tokenize parses a list of component values.
// If `skipComments` is true, the returned values (and recursively
// their blocks) will not contain any Comment token.
func Tokenize(css []byte, skipComments bool) []Token {
	// This turns out to be faster than a regexp:
	css = bytes.ReplaceAll(css, []byte("\u0000"), []byte("\uFFFD"))
	css = bytes.ReplaceAll(css, []byte("\r\n"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\r"), []byte("\n"))
	css = bytes.ReplaceAll(css, []byte("\f"), []byte("\n"))

	length := len(css)
	tokenStartPos, pos := 0, 0
	line, lastNewline := 1, -1
	var out []Token
	var endChar byte // pop the stack when encountering this character
	var stack []openBlock
	var err error

mainLoop:
	for pos < length {
		newline := bytes.LastIndexByte(css[tokenStartPos:pos], '\n')
		if newline != -1 {
			newline += tokenStartPos
			line += 1 + bytes.Count(css[tokenStartPos:newline], []byte{'\n'})
			lastNewline = newline
		}
		// First character in a line is in column 1.
		column := pos - lastNewline
		tokenPos := Pos{Line: line, Column: column}

		tokenStartPos = pos
		c := css[pos]

		switch c {
		case ' ', '\n', '\t':
			pos += 1
			for ; pos < length; pos += 1 {
				u := css[pos]
				if !(u == ' ' || u == '\n' || u == '\t') {
					break
				}
			}
			value := css[tokenStartPos:pos]
			out = append(out, Whitespace{pos: tokenPos, Value: string(value)})
			continue
		}
		if isIdentStart(css, pos) {
			var value string
			value, pos = consumeIdent(css, pos)
			if !(pos < length && css[pos] == '(') { // Not a function
				out = append(out, Ident{pos: tokenPos, Value: value})
				continue
			}
			// Functions are out of the supported subset: keep the name and
			// tokenize the parentheses as a block so the parser can skip
			// the whole construct cleanly.
			pos += 1 // Skip the "("
			out = append(out, Ident{pos: tokenPos, Value: value})
			stack = append(stack, openBlock{parent: out, pos: tokenPos, endChar: endChar})
			out, endChar = nil, ')'
			continue
		}

		value := css[pos:]
		match := numberRe.FindIndex(value)
		if match != nil {
			repr := string(css[pos+match[0] : pos+match[1]])
			pos += match[1]
			value, _ := strconv.ParseFloat(repr, 32)
			if value == 0 {
				value = 0. // workaround -0
			}
			_, err = strconv.ParseInt(repr, 10, 0)
			isInt := err == nil
			n := numeric{
				pos:            tokenPos,
				Representation: repr,
				IsInteger:      isInt,
				Value:          utils.Fl(value),
			}
			if pos < length && isIdentStart(css, pos) {
				var unit string
				unit, pos = consumeIdent(css, pos)
				out = append(out, Dimension{numeric: n, Unit: utils.AsciiLower(unit)})
			} else if pos < length && css[pos] == '%' {
				pos += 1
				out = append(out, Percentage{numeric: n})
			} else {
				out = append(out, Number{numeric: n})
			}
			continue
		}
		switch c {
		case '@':
			pos += 1
			if pos < length && isIdentStart(css, pos) {
				var ident string
				ident, pos = consumeIdent(css, pos)
				out = append(out, AtKeyword{pos: tokenPos, Value: utils.AsciiLower(ident)})
			} else {
				out = append(out, Literal{pos: tokenPos, Value: "@"})
			}
		case '#':
			pos += 1
			if pos < length {
				r, _ := utf8.DecodeRune(css[pos:])
				if ('0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '-' || r == '_') ||
					r > 0x7F || // Non-ASCII
					(r == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))) { // Valid escape
					isIdentifier := isIdentStart(css, pos)
					var ident string
					ident, pos = consumeIdent(css, pos)
					out = append(out, Hash{pos: tokenPos, Value: ident, IsIdentifier: isIdentifier})
					continue
				}
			}
			out = append(out, Literal{pos: tokenPos, Value: "#"})
		case '{':
			stack = append(stack, openBlock{parent: out, pos: tokenPos, endChar: endChar})
			out, endChar = nil, '}'
			pos += 1
		case '[':
			stack = append(stack, openBlock{parent: out, pos: tokenPos, endChar: endChar})
			out, endChar = nil, ']'
			pos += 1
		case '(':
			stack = append(stack, openBlock{parent: out, pos: tokenPos, endChar: endChar})
			out, endChar = nil, ')'
			pos += 1
		case 0: // avoid false comparison with the top-level endChar
		case endChar: // Matching }, ] or )
			// The top-level endChar is 0, so we never get here if the stack is empty.
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			block := closeBlock(top.pos, endChar, out)
			out, endChar = append(top.parent, block), top.endChar
			pos += 1
		case '}', ']', ')':
			out = append(out, ParseError{pos: tokenPos, kind: string(rune(c)), Message: "Unmatched " + string(rune(c))})
			pos += 1
		case '\'', '"':
			var (
				quotedString string
				addValue     bool
			)
			quotedString, pos, addValue, err = consumeQuotedString(css, pos)
			if addValue {
				out = append(out, String{pos: tokenPos, Value: quotedString})
			}
			if err != nil {
				out = append(out, ParseError{pos: tokenPos, kind: err.Error(), Message: "bad string token"})
			}
		default:
			switch {
			case bytes.HasPrefix(css[pos:], []byte("/*")): // Comment
				index := bytes.Index(css[pos+2:], []byte("*/"))
				pos += 2 + index
				if index == -1 {
					if !skipComments {
						out = append(out, Comment{pos: tokenPos, Value: string(css[tokenStartPos+2:])})
					}
					break mainLoop
				}
				if !skipComments {
					out = append(out, Comment{pos: tokenPos, Value: string(css[tokenStartPos+2 : pos])})
				}
				pos += 2
			case bytes.HasPrefix(css[pos:], []byte("<!--")):
				out = append(out, Literal{pos: tokenPos, Value: "<!--"})
				pos += 4
			case bytes.HasPrefix(css[pos:], []byte("-->")):
				out = append(out, Literal{pos: tokenPos, Value: "-->"})
				pos += 3
			case c == '~' || c == '|' || c == '^' || c == '$' || c == '*':
				pos += 1
				if bytes.HasPrefix(css[pos:], []byte{'='}) {
					pos += 1
					out = append(out, Literal{pos: tokenPos, Value: string(rune(c)) + "="})
				} else {
					out = append(out, Literal{pos: tokenPos, Value: string(rune(c))})
				}
			default:
				r, w := utf8.DecodeRune(css[pos:])
				pos += w
				out = append(out, Literal{pos: tokenPos, Value: string(r)})
			}
		}
	}

	// Close unterminated blocks, innermost first.
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		block := closeBlock(top.pos, endChar, out)
		out, endChar = append(top.parent, block), top.endChar
	}
	return out
}

// Return true if the given character is a name-start code point.
func isNameStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
	c, _ := utf8.DecodeRune(css[pos:])
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// Return true if the given position is the start of a CSS identifier.
func isIdentStart(css []byte, pos int) bool {
	// https://www.w3.org/TR/css-syntax-3/#would-start-an-identifier
	if isNameStart(css, pos) {
		return true
	} else if css[pos] == '-' {
		pos += 1
		if pos >= len(css) {
			return false
		}
		// Name-start code point or valid escape
		nameStart := isNameStart(css, pos) || css[pos] == '-'
		validEscape := css[pos] == '\\' && !bytes.HasPrefix(css[pos:], []byte("\\\n"))
		return nameStart || validEscape
	} else if css[pos] == '\\' {
		return !bytes.HasPrefix(css[pos:], []byte("\\\n"))
	}
	return false
}

func consumeIdent(value []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-a-name
	var chunks strings.Builder
	L := len(value)
	startPos := pos
	for pos < L {
		c, w := utf8.DecodeRune(value[pos:])
		if strings.ContainsRune("abcdefghijklmnopqrstuvwxyz-_0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", c) || c > 0x7F {
			pos += w
		} else if c == '\\' && !bytes.HasPrefix(value[pos:], []byte("\\\n")) {
			// Valid escape
			chunks.Write(value[startPos:pos])
			var car string
			car, pos = consumeEscape(value, pos+w)
			chunks.WriteString(car)
			startPos = pos
		} else {
			break
		}
	}
	chunks.Write(value[startPos:pos])
	return chunks.String(), pos
}

// Returns the unescaped string content.
// http://dev.w3.org/csswg/css-syntax/#consume-a-string-token
// css[pos] is assumed to be a quote.
func consumeQuotedString(css []byte, pos int) (string, int, bool, error) {
	quote := rune(css[pos])
	pos += 1
	var chunks strings.Builder
	length := len(css)
	startPos := pos
	hasBroken := false
mainLoop:
	for pos < length {
		c, w := utf8.DecodeRune(css[pos:])
		switch c {
		case quote:
			chunks.Write(css[startPos:pos])
			pos += w
			hasBroken = true
			break mainLoop
		case '\\':
			chunks.Write(css[startPos:pos])
			pos += w
			if pos < length {
				if css[pos] == '\n' { // Ignore escaped newlines
					pos += 1
				} else {
					var cs string
					cs, pos = consumeEscape(css, pos)
					chunks.WriteString(cs)
				}
			} // else: Escaped EOF, do nothing
			startPos = pos
		case '\n': // Unescaped newline
			return "", pos, false, errors.New("bad-string")
		default:
			pos += w
		}
	}
	var err error
	if !hasBroken {
		chunks.Write(css[startPos:pos])
		err = errors.New("eof-in-string")
	}
	return chunks.String(), pos, true, err
}

// Return (unescapedChar, newPos).
// Assumes a valid escape: pos is just after '\' and not followed by '\n'.
func consumeEscape(css []byte, pos int) (string, int) {
	// http://dev.w3.org/csswg/css-syntax/#consume-an-escaped-character
	hexMatch := hexEscapeRe.FindSubmatch(css[pos:])
	if len(hexMatch) >= 2 {
		codepoint, err := strconv.ParseInt(string(hexMatch[1]), 16, 0)
		if err != nil {
			// the regexp ensures it is a valid hex number
			panic(fmt.Sprintf("codepoint should be valid hexadecimal, got %s", hexMatch[0]))
		}
		char := "�"
		if 0 < codepoint && codepoint <= unicode.MaxRune {
			char = string(rune(codepoint))
		}
		return char, pos + len(hexMatch[0])
	} else if pos < len(css) {
		r, w := utf8.DecodeRune(css[pos:])
		return string(r), pos + w
	} else {
		return "�", pos
	}
}
