package layout

import (
	pr "github.com/go-galley/galley/css/properties"
	bo "github.com/go-galley/galley/html/boxes"
)

// Layout for block-level boxes : vertical stacking in the normal flow.

// marginValue resolves a used margin, `auto` computing to zero.
func marginValue(v pr.Value) pr.Fl {
	if v.S == "auto" {
		return 0
	}
	return pr.Fl(v.Value)
}

// hasInlineContent returns whether the children of a block are text
// runs to break into lines. After box generation the children of a
// block-level box are either all block-level or all text runs.
func hasInlineContent(children []Box) bool {
	return len(children) > 0 && children[0].Type() == bo.TextT
}

// blockLevelLayout lays out the block-level `box_` and its
// descendants. (positionX, positionY) is the top left corner of the
// margin box, and containingWidth the width of the containing block's
// content box. It returns the height of the margin box.
func blockLevelLayout(context *layoutContext, box_ Box, positionX, positionY, containingWidth pr.Fl) pr.Fl {
	box := box_.Box()
	style := box.Style

	marginTop := marginValue(style.GetMarginTop())
	marginBottom := marginValue(style.GetMarginBottom())
	marginLeft := marginValue(style.GetMarginLeft())
	marginRight := marginValue(style.GetMarginRight())

	box.PositionX = positionX + marginLeft
	box.PositionY = positionY + marginTop

	// an explicit width overrides the containing block fill
	if w := style.GetWidth(); w.S == "auto" {
		box.Width = containingWidth - marginLeft - marginRight
	} else {
		box.Width = pr.Fl(w.Value)
	}

	var contentHeight pr.Fl
	if hasInlineContent(box.Children) {
		box.Children, contentHeight = lineBoxLayout(context, box_)
	} else {
		currentY := box.PositionY
		for _, child := range box.Children {
			currentY += blockLevelLayout(context, child, box.PositionX, currentY, box.Width)
		}
		contentHeight = currentY - box.PositionY
	}

	// an explicit height wins over the content height, without moving
	// the children already placed
	if h := style.GetHeight(); h.S == "auto" {
		box.Height = contentHeight
	} else {
		box.Height = pr.Fl(h.Value)
	}

	return marginTop + box.Height + marginBottom
}
