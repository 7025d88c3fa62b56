package parser

import (
	"fmt"
	"io"

	"github.com/go-galley/galley/utils"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	KWhitespace Kind = iota
	KComment
	KIdent
	KAtKeyword
	KHash
	KString
	KNumber
	KPercentage
	KDimension
	KLiteral
	KCurlyBracketsBlock
	KSquareBracketsBlock
	KParenthesesBlock
	KParseError
)

func (k Kind) String() string {
	switch k {
	case KWhitespace:
		return "whitespace"
	case KComment:
		return "comment"
	case KIdent:
		return "ident"
	case KAtKeyword:
		return "at-keyword"
	case KHash:
		return "hash"
	case KString:
		return "string"
	case KNumber:
		return "number"
	case KPercentage:
		return "percentage"
	case KDimension:
		return "dimension"
	case KLiteral:
		return "literal"
	case KCurlyBracketsBlock:
		return "{} block"
	case KSquareBracketsBlock:
		return "[] block"
	case KParenthesesBlock:
		return "() block"
	case KParseError:
		return "error"
	default:
		return fmt.Sprintf("<kind %d>", k)
	}
}

// Pos is a position in the tokenized source,
// used in error messages. Lines and columns start at 1.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Token is one lexical unit of a CSS source.
type Token interface {
	Pos() Pos
	Kind() Kind

	serializeTo(io.StringWriter)
}

type (
	Whitespace struct {
		pos   Pos
		Value string
	}

	Comment struct {
		pos   Pos
		Value string
	}

	Ident struct {
		pos   Pos
		Value string
	}

	AtKeyword struct {
		pos   Pos
		Value string
	}

	Hash struct {
		pos          Pos
		Value        string
		IsIdentifier bool
	}

	String struct {
		pos   Pos
		Value string
	}

	numeric struct {
		pos            Pos
		Representation string
		IsInteger      bool
		Value          utils.Fl
	}

	Number struct {
		numeric
	}

	Percentage struct {
		numeric
	}

	Dimension struct {
		numeric
		Unit string
	}

	Literal struct {
		pos   Pos
		Value string
	}

	CurlyBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}

	SquareBracketsBlock struct {
		pos       Pos
		Arguments []Token
	}

	ParenthesesBlock struct {
		pos       Pos
		Arguments []Token
	}

	ParseError struct {
		pos     Pos
		kind    string
		Message string
	}
)

func (t Whitespace) Pos() Pos          { return t.pos }
func (t Comment) Pos() Pos             { return t.pos }
func (t Ident) Pos() Pos               { return t.pos }
func (t AtKeyword) Pos() Pos           { return t.pos }
func (t Hash) Pos() Pos                { return t.pos }
func (t String) Pos() Pos              { return t.pos }
func (t numeric) Pos() Pos             { return t.pos }
func (t Literal) Pos() Pos             { return t.pos }
func (t CurlyBracketsBlock) Pos() Pos  { return t.pos }
func (t SquareBracketsBlock) Pos() Pos { return t.pos }
func (t ParenthesesBlock) Pos() Pos    { return t.pos }
func (t ParseError) Pos() Pos          { return t.pos }

func (Whitespace) Kind() Kind          { return KWhitespace }
func (Comment) Kind() Kind             { return KComment }
func (Ident) Kind() Kind               { return KIdent }
func (AtKeyword) Kind() Kind           { return KAtKeyword }
func (Hash) Kind() Kind                { return KHash }
func (String) Kind() Kind              { return KString }
func (Number) Kind() Kind              { return KNumber }
func (Percentage) Kind() Kind          { return KPercentage }
func (Dimension) Kind() Kind           { return KDimension }
func (Literal) Kind() Kind             { return KLiteral }
func (CurlyBracketsBlock) Kind() Kind  { return KCurlyBracketsBlock }
func (SquareBracketsBlock) Kind() Kind { return KSquareBracketsBlock }
func (ParenthesesBlock) Kind() Kind    { return KParenthesesBlock }
func (ParseError) Kind() Kind          { return KParseError }

// Int returns the value truncated to an int.
// It should only be called on integer numbers.
func (t numeric) Int() int { return int(t.Value) }

// TokensIter iterates over a list of tokens.
type TokensIter struct {
	tokens []Token
	index  int
}

func NewIter(tokens []Token) *TokensIter {
	return &TokensIter{tokens: tokens}
}

func (it TokensIter) HasNext() bool { return it.index < len(it.tokens) }

// Next returns the next token, or nil when exhausted.
func (it *TokensIter) Next() Token {
	if it.HasNext() {
		t := it.tokens[it.index]
		it.index++
		return t
	}
	return nil
}

// NextSignificant returns the next token which is neither
// whitespace nor a comment, or nil when exhausted.
func (it *TokensIter) NextSignificant() Token {
	for it.HasNext() {
		token := it.Next()
		if token.Kind() != KWhitespace && token.Kind() != KComment {
			return token
		}
	}
	return nil
}
