// Package boxes turns a styled document tree into the box tree
// consumed by layout.
//
// Only three kinds of boxes exist : block containers, lines, and text
// runs. Inline elements do not get boxes of their own, they contribute
// text runs carrying their computed style; lines are created by the
// layout stage.
package boxes

import (
	"fmt"

	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/html/tree"
)

// BoxType identifies the concrete kind of a box.
type BoxType uint8

const (
	BlockT BoxType = iota
	LineT
	TextT
)

func (t BoxType) String() string {
	switch t {
	case BlockT:
		return "Block"
	case LineT:
		return "Line"
	case TextT:
		return "Text"
	default:
		return "<invalid box type>"
	}
}

// Box is the common interface of the box tree nodes.
type Box interface {
	// Box returns the fields shared by all box kinds.
	Box() *BoxFields
	// Type identifies the concrete kind of the box.
	Type() BoxType

	String() string
}

// BoxFields is the set of fields shared by all box kinds.
type BoxFields struct {
	// Style is the computed style of the generating element;
	// anonymous boxes derive theirs from the parent box.
	Style pr.Properties

	// ElementTag is the tag of the generating element; anonymous
	// boxes reuse the tag of their parent.
	ElementTag string

	Children []Box

	// PositionX, PositionY locate the top left corner of the box
	// relative to the page origin. They are set by layout.
	PositionX, PositionY pr.Fl
	// Width, Height are the dimensions of the box, set by layout.
	Width, Height pr.Fl

	// Element is the index in the document of the originating node,
	// or -1 for anonymous boxes. It links boxes back to the tree,
	// for hit testing.
	Element tree.NodeID
}

func newBoxFields(style pr.Properties, tag string, element tree.NodeID, children []Box) BoxFields {
	return BoxFields{Style: style, ElementTag: tag, Element: element, Children: children}
}

func (b *BoxFields) Box() *BoxFields { return b }

// BlockBox is a block container : its children are either all
// block-level boxes, or, before layout, inline content to be broken
// into lines.
type BlockBox struct {
	BoxFields
}

func NewBlockBox(style pr.Properties, tag string, element tree.NodeID, children []Box) *BlockBox {
	return &BlockBox{BoxFields: newBoxFields(style, tag, element, children)}
}

// BlockBoxAnonymousFrom returns a block box with no originating
// element, wrapping `children` inside `parent`.
func BlockBoxAnonymousFrom(parent Box, children []Box) *BlockBox {
	style := tree.AnonymousStyle(parent.Box().Style)
	style.SetDisplay(pr.DBlock)
	return NewBlockBox(style, parent.Box().ElementTag, -1, children)
}

func (*BlockBox) Type() BoxType { return BlockT }

func (b *BlockBox) String() string { return fmt.Sprintf("<BlockBox %s>", b.ElementTag) }

// LineBox is one line of formatted inline content inside a block
// container. Its children are the text runs sitting on the line.
type LineBox struct {
	BoxFields

	// Baseline is the distance from the top of the line to the
	// shared baseline of its runs.
	Baseline pr.Fl
}

// LineBoxAnonymousFrom returns a line holding `children`, generated
// inside the block container `parent`.
func LineBoxAnonymousFrom(parent Box, children []Box) *LineBox {
	style := tree.AnonymousStyle(parent.Box().Style)
	return &LineBox{BoxFields: newBoxFields(style, parent.Box().ElementTag, -1, children)}
}

func (*LineBox) Type() BoxType { return LineT }

func (b *LineBox) String() string { return fmt.Sprintf("<LineBox (%d runs)>", len(b.Children)) }

// TextBox is a run of text sharing a single style.
type TextBox struct {
	Text string

	BoxFields
}

func NewTextBox(style pr.Properties, tag string, element tree.NodeID, text string) *TextBox {
	if len(text) == 0 {
		panic("NewTextBox called with empty text")
	}
	return &TextBox{BoxFields: newBoxFields(style, tag, element, nil), Text: text}
}

// CopyWithText returns a new TextBox identical to this one, except
// for the text.
func (b TextBox) CopyWithText(text string) *TextBox {
	if len(text) == 0 {
		panic("empty text")
	}
	newBox := b
	newBox.Text = text
	return &newBox
}

func (*TextBox) Type() BoxType { return TextT }

func (b *TextBox) String() string { return fmt.Sprintf("<TextBox %q>", b.Text) }
