package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// pairs of token kinds requiring an empty comment
// when serialized next to each other, to parse back unchanged
var badPairs = map[[2]string]bool{}

func init() {
	for _, a := range []string{"ident", "at-keyword", "hash", "dimension", "#", "-", "number"} {
		for _, b := range []string{"ident", "number", "percentage", "dimension"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, a := range []string{"ident", "at-keyword", "hash", "dimension"} {
		for _, b := range []string{"-", "-->"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	badPairs[[2]string{"@", "ident"}] = true
	badPairs[[2]string{"@", "-"}] = true
	for _, a := range []string{".", "+"} {
		for _, b := range []string{"number", "percentage", "dimension"} {
			badPairs[[2]string{a, b}] = true
		}
	}
	for _, a := range []string{"$", "*", "^", "~", "|"} {
		badPairs[[2]string{a, "="}] = true
	}
	badPairs[[2]string{"ident", "() block"}] = true
	badPairs[[2]string{"|", "|"}] = true
	badPairs[[2]string{"/", "*"}] = true
}

// Serialize returns the CSS source for the list of tokens,
// so that parsing it back yields the same list.
func Serialize(l []Token) string {
	var w strings.Builder
	serializeTokens(l, &w)
	return w.String()
}

// http://drafts.csswg.org/csswg/css-syntax/#serialization-tables
func serializeTokens(nodes []Token, writer io.StringWriter) {
	var previousType string
	for _, node := range nodes {
		serializationType := node.Kind().String()
		if literal, ok := node.(Literal); ok {
			serializationType = literal.Value
		}
		if badPairs[[2]string{previousType, serializationType}] {
			writer.WriteString("/**/")
		} else if previousType == "\\" {
			whitespace, ok := node.(Whitespace)
			ok = ok && strings.HasPrefix(whitespace.Value, "\n")
			if !ok {
				writer.WriteString("\n")
			}
		}
		node.serializeTo(writer)
		previousType = serializationType
	}
}

// Serialize any string as a CSS identifier
// Returns an Unicode string
// that would parse as an `Ident`
// whose value attribute equals the passed `value` argument.
func serializeIdentifier(value string) string {
	if value == "-" {
		return `\-`
	}

	if len(value) >= 2 && value[:2] == "--" {
		return "--" + serializeName(value[2:])
	}
	var result string
	if value[0] == '-' {
		result = "-"
		value = value[1:]
	} else {
		result = ""
	}
	c, w := utf8.DecodeRuneInString(value)
	var suffix string
	switch c {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '_', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
		suffix = string(c)
	case '\n':
		suffix = `\A `
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		suffix = fmt.Sprintf("\\%X", c)
	default:
		if c > 0x7F {
			suffix = string(c)
		} else {
			suffix = "\\" + string(c)
		}
	}
	result += suffix + serializeName(value[w:])
	return result
}

func serializeName(value string) string {
	var chunks strings.Builder
	for _, c := range value {
		var mapped string
		switch c {
		case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '-', '_', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z':
			mapped = string(c)
		case '\n':
			mapped = `\A `
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			mapped = string(c)
		default:
			if c > 0x7F {
				mapped = string(c)
			} else {
				mapped = "\\" + string(c)
			}
		}
		chunks.WriteString(mapped)
	}
	return chunks.String()
}

func serializeStringValue(value string) string {
	var chunks strings.Builder
	for _, c := range value {
		var mapped string
		switch c {
		case '"':
			mapped = `\"`
		case '\\':
			mapped = `\\`
		case '\n':
			mapped = `\A `
		default:
			mapped = string(c)
		}
		chunks.WriteString(mapped)
	}
	return chunks.String()
}

func (t Literal) serializeTo(writer io.StringWriter) {
	writer.WriteString(t.Value)
}

func (t ParseError) serializeTo(writer io.StringWriter) {
	switch t.kind {
	case "}", "]", ")":
		writer.WriteString(t.kind)
	case "bad-string":
		writer.WriteString("\"[bad string]\n")
	case "eof-in-string":
		// pass
	default:
		panic(fmt.Sprint("Can not serialize token", t))
	}
}

func (t Comment) serializeTo(writer io.StringWriter) {
	writer.WriteString("/*")
	writer.WriteString(t.Value)
	writer.WriteString("*/")
}

func (t Whitespace) serializeTo(writer io.StringWriter) {
	writer.WriteString(t.Value)
}

func (t Ident) serializeTo(writer io.StringWriter) {
	writer.WriteString(serializeIdentifier(t.Value))
}

func (t AtKeyword) serializeTo(writer io.StringWriter) {
	writer.WriteString("@")
	writer.WriteString(serializeIdentifier(t.Value))
}

func (t Hash) serializeTo(writer io.StringWriter) {
	writer.WriteString("#")
	if t.IsIdentifier {
		writer.WriteString(serializeIdentifier(t.Value))
	} else {
		writer.WriteString(serializeName(t.Value))
	}
}

func (t String) serializeTo(writer io.StringWriter) {
	writer.WriteString(`"`)
	writer.WriteString(serializeStringValue(t.Value))
	writer.WriteString(`"`)
}

func (t Number) serializeTo(writer io.StringWriter) {
	writer.WriteString(t.Representation)
}

func (t Percentage) serializeTo(writer io.StringWriter) {
	writer.WriteString(t.Representation)
	writer.WriteString("%")
}

func (t Dimension) serializeTo(writer io.StringWriter) {
	writer.WriteString(t.Representation)
	// Disambiguate with scientific notation
	if t.Unit == "e" || t.Unit == "E" || strings.HasPrefix(t.Unit, "e-") || strings.HasPrefix(t.Unit, "E-") {
		writer.WriteString("\\65 ")
		writer.WriteString(serializeName(t.Unit[1:]))
	} else {
		writer.WriteString(serializeIdentifier(t.Unit))
	}
}

func (t ParenthesesBlock) serializeTo(writer io.StringWriter) {
	writer.WriteString("(")
	serializeTokens(t.Arguments, writer)
	writer.WriteString(")")
}

func (t SquareBracketsBlock) serializeTo(writer io.StringWriter) {
	writer.WriteString("[")
	serializeTokens(t.Arguments, writer)
	writer.WriteString("]")
}

func (t CurlyBracketsBlock) serializeTo(writer io.StringWriter) {
	writer.WriteString("{")
	serializeTokens(t.Arguments, writer)
	writer.WriteString("}")
}
