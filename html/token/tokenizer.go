package token

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-galley/galley/utils"
)

// A Tokenizer scans a markup document. Its state follows the shape
// of the input: character data, tag, attribute name, attribute
// value, and raw text after a <script> or <style> start tag.
type Tokenizer struct {
	input string
	pos   int

	// non empty while in raw text: the name of the element,
	// whose matching end tag is the only exit
	rawTag string
}

// NewTokenizer returns a tokenizer reading from `input`.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token in the stream, or [EOF] once the
// input is exhausted.
func (z *Tokenizer) Next() Token {
	if z.rawTag != "" {
		return z.rawText()
	}
	if z.pos >= len(z.input) {
		return EOF{}
	}
	if z.input[z.pos] == '<' {
		token, isMarkup := z.markup()
		if isMarkup {
			if token == nil {
				// an unterminated fragment swallowed the end of the input
				return z.Next()
			}
			return token
		}
		// a lone "<" is character data
	}
	return z.text()
}

// text consumes character data up to the next markup declaration,
// decoding character references.
func (z *Tokenizer) text() Token {
	start := z.pos
	if z.input[z.pos] == '<' { // stray, already rejected as markup
		z.pos++
	}
	if index := strings.IndexByte(z.input[z.pos:], '<'); index == -1 {
		z.pos = len(z.input)
	} else {
		z.pos += index
	}
	return Text{Content: html.UnescapeString(z.input[start:z.pos])}
}

// markup scans a comment or a tag. It returns isMarkup == false when
// the "<" at the current position opens neither, and a nil token when
// an unterminated fragment consumed the end of the input.
func (z *Tokenizer) markup() (_ Token, isMarkup bool) {
	if strings.HasPrefix(z.input[z.pos:], "<!--") {
		return z.comment(), true
	}
	return z.tag()
}

func (z *Tokenizer) comment() Token {
	start := z.pos + 4
	end := strings.Index(z.input[start:], "-->")
	if end == -1 {
		z.pos = len(z.input)
		return nil
	}
	z.pos = start + end + 3
	return Comment{Content: z.input[start : start+end]}
}

// tag scans a start or end tag, with its attributes.
func (z *Tokenizer) tag() (Token, bool) {
	start := z.pos
	z.pos++ // "<"
	isEnd := false
	if z.pos < len(z.input) && z.input[z.pos] == '/' {
		isEnd = true
		z.pos++
	}
	name := z.name()
	if name == "" {
		z.pos = start
		return nil, false
	}

	var (
		attributes  []Attribute
		selfClosing bool
		closed      bool
	)
	for !closed {
		z.skipSpace()
		if z.pos >= len(z.input) {
			// unterminated tag: drop the fragment
			return nil, true
		}
		switch c := z.input[z.pos]; {
		case c == '>':
			z.pos++
			closed = true
		case c == '/' && z.pos+1 < len(z.input) && z.input[z.pos+1] == '>':
			selfClosing = true
			z.pos += 2
			closed = true
		default:
			attrName := z.name()
			if attrName == "" {
				z.pos++ // junk byte
				continue
			}
			var value string
			z.skipSpace()
			if z.pos < len(z.input) && z.input[z.pos] == '=' {
				z.pos++
				z.skipSpace()
				var terminated bool
				value, terminated = z.attrValue()
				if !terminated {
					return nil, true
				}
			}
			if _, seen := lookupAttr(attributes, attrName); !seen {
				attributes = append(attributes, Attribute{Name: attrName, Value: value})
			}
		}
	}

	if isEnd {
		// attributes and a self-closing slash on an end tag
		// are tolerated and dropped
		return EndTag{Name: name}, true
	}
	token := StartTag{Name: name, Attributes: attributes, SelfClosing: selfClosing}
	if !selfClosing && (name == "script" || name == "style") {
		z.rawTag = name
	}
	return token, true
}

// attrValue scans a quoted or unquoted attribute value, decoding
// character references. It returns false for an unterminated
// quoted value.
func (z *Tokenizer) attrValue() (string, bool) {
	if z.pos >= len(z.input) {
		return "", false
	}
	if quote := z.input[z.pos]; quote == '"' || quote == '\'' {
		end := strings.IndexByte(z.input[z.pos+1:], quote)
		if end == -1 {
			z.pos = len(z.input)
			return "", false
		}
		value := z.input[z.pos+1 : z.pos+1+end]
		z.pos += end + 2
		return html.UnescapeString(value), true
	}
	start := z.pos
	for z.pos < len(z.input) {
		if c := z.input[z.pos]; isSpace(c) || c == '"' || c == '\'' || c == '>' {
			break
		}
		z.pos++
	}
	return html.UnescapeString(z.input[start:z.pos]), true
}

// rawText consumes the content of a <script> or <style> element,
// verbatim, up to its matching end tag.
func (z *Tokenizer) rawText() Token {
	end := z.findRawEnd()
	if end == -1 {
		text := z.input[z.pos:]
		z.pos = len(z.input)
		z.rawTag = ""
		if text == "" {
			return EOF{}
		}
		return Text{Content: text}
	}
	if end > z.pos {
		text := z.input[z.pos:end]
		z.pos = end
		return Text{Content: text}
	}
	z.rawTag = ""
	token, _ := z.tag()
	if token == nil {
		return z.Next()
	}
	return token
}

// findRawEnd locates the end tag exiting the raw text element,
// case-insensitively, ignoring any other markup in between.
func (z *Tokenizer) findRawEnd() int {
	for i := z.pos; i+2+len(z.rawTag) <= len(z.input); i++ {
		if z.input[i] != '<' || z.input[i+1] != '/' {
			continue
		}
		if !strings.EqualFold(z.input[i+2:i+2+len(z.rawTag)], z.rawTag) {
			continue
		}
		if after := i + 2 + len(z.rawTag); after < len(z.input) {
			if c := z.input[after]; c == '>' || c == '/' || isSpace(c) {
				return i
			}
		}
	}
	return -1
}

// name consumes a tag or attribute name, ASCII lowercased.
func (z *Tokenizer) name() string {
	start := z.pos
	for z.pos < len(z.input) && isNameByte(z.input[z.pos]) {
		z.pos++
	}
	return utils.AsciiLower(z.input[start:z.pos])
}

func (z *Tokenizer) skipSpace() {
	for z.pos < len(z.input) && isSpace(z.input[z.pos]) {
		z.pos++
	}
}

func lookupAttr(attrs []Attribute, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

func isNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '!' || c == '?' || c == ':' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}
