// Transform a "before layout" box tree into an "after layout" tree,
// by breaking text across lines and determining the size and position
// of each box.
//
// Boxes in the new tree have `used values` in their PositionX,
// PositionY, Width and Height attributes
// (see https://www.w3.org/TR/CSS21/cascade.html#used-value).
//
// The laid out tree is ready to be displayed on screen, which is
// the higher level `backend` package's concern.
package layout

import (
	pr "github.com/go-galley/galley/css/properties"
	bo "github.com/go-galley/galley/html/boxes"
	"github.com/go-galley/galley/html/tree"
	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/text"
)

type Box = bo.Box

// layoutContext carries the document-wide collaborators of one layout
// pass.
type layoutContext struct {
	fonts text.FontConfiguration
	lang  string // document language, used to shape and break text
}

// Layout builds the formatting structure of the styled document and
// computes its geometry, constrained by the viewport `width`.
//
// The returned root box is a fresh tree : laying out the same document
// twice yields two identical, independent trees, so a viewport resize
// only needs a new call.
func Layout(doc *tree.Document, fonts text.FontConfiguration, width pr.Fl) Box {
	logger.ProgressLogger.Println("Step 4 - Creating formatting structure")

	root := bo.BuildFormattingStructure(doc)

	logger.ProgressLogger.Println("Step 5 - Creating layout")

	context := &layoutContext{fonts: fonts, lang: doc.Lang()}
	blockLevelLayout(context, root, 0, 0, width)
	return root
}
