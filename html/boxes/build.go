package boxes

import (
	"strings"

	pr "github.com/go-galley/galley/css/properties"
	"github.com/go-galley/galley/html/tree"
)

// documentTag is the tag exposed by the box of the document root,
// which has no generating element.
const documentTag = "#document"

// BuildFormattingStructure builds the box tree of `doc`, whose
// computed styles must have been resolved already.
//
// Elements styled with `display: none` are pruned with their whole
// subtree. Inline elements contribute text runs styled with their
// computed style, so a block containing only inline content holds a
// flat list of TextBox children. When block-level boxes and inline
// content are mixed at the same level, consecutive runs are wrapped
// in anonymous block boxes.
func BuildFormattingStructure(doc *tree.Document) Box {
	style := tree.AnonymousStyle(nil)
	style.SetDisplay(pr.DBlock)
	return buildBlock(doc, 0, style, documentTag)
}

func buildBlock(doc *tree.Document, element tree.NodeID, style pr.Properties, tag string) *BlockBox {
	box := NewBlockBox(style, tag, element, nil)
	box.Children = wrapAnonymous(box, contentChildren(doc, element, style, tag))
	return box
}

// contentChildren collects the boxes generated by the children of
// `parent`, flattening inline elements into styled text runs. A
// block-level box found inside inline content is attached here, in
// document order, ending up a sibling of the runs around it.
func contentChildren(doc *tree.Document, parent tree.NodeID, style pr.Properties, tag string) []Box {
	var out []Box
	for _, cid := range doc.Children(parent) {
		child := doc.Get(cid)
		switch child.Type {
		case tree.NodeText:
			if text := collapseWhitespace(child.Data); text != "" {
				out = append(out, NewTextBox(style, tag, cid, text))
			}
		case tree.NodeElement:
			childStyle := child.Style
			switch childStyle.GetDisplay() {
			case pr.DNone: // pruned with its whole subtree
			case pr.DBlock:
				out = append(out, buildBlock(doc, cid, childStyle, child.Data))
			default:
				out = append(out, contentChildren(doc, cid, childStyle, child.Data)...)
			}
		}
		// comments and declarations generate no boxes
	}
	return out
}

// wrapAnonymous wraps consecutive inline-level children in anonymous
// block boxes when they have block-level siblings, so that a block
// container holds either only block-level boxes or only inline
// content. Runs of white space sitting between two blocks are
// dropped instead of wrapped.
func wrapAnonymous(parent Box, children []Box) []Box {
	hasBlock := false
	for _, child := range children {
		if child.Type() == BlockT {
			hasBlock = true
			break
		}
	}
	if !hasBlock {
		return children
	}

	var out, run []Box
	flush := func() {
		if len(run) != 0 && !isWhitespace(run) {
			out = append(out, BlockBoxAnonymousFrom(parent, run))
		}
		run = nil
	}
	for _, child := range children {
		if child.Type() == BlockT {
			flush()
			out = append(out, child)
		} else {
			run = append(run, child)
		}
	}
	flush()
	return out
}

// isWhitespace returns whether `boxes` holds only text runs of
// spaces.
func isWhitespace(boxes []Box) bool {
	for _, box := range boxes {
		text, ok := box.(*TextBox)
		if !ok || strings.Trim(text.Text, " ") != "" {
			return false
		}
	}
	return true
}

// collapseWhitespace reduces every run of white space in `text` to a
// single space, following the normal CSS white space processing.
// Leading and trailing runs are kept, as a single space : dropping
// them is a line breaking concern.
func collapseWhitespace(text string) string {
	var (
		out     strings.Builder
		inSpace bool
	)
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			inSpace = true
		default:
			if inSpace {
				out.WriteByte(' ')
				inSpace = false
			}
			out.WriteRune(r)
		}
	}
	if inSpace {
		out.WriteByte(' ')
	}
	return out.String()
}
