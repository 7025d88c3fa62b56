// Package backend defines the interface between a laid out document
// and its presentation, as output-agnostic drawing primitives.
//
// The types implementing this interface convert a laid out box tree to
// the final output : a GUI canvas, a raster image or a plain text dump.
package backend

import (
	pa "github.com/go-galley/galley/css/parser"
	"github.com/go-galley/galley/text"
	"github.com/go-galley/galley/utils"
)

type Fl = utils.Fl

// Rect is an axis-aligned rectangle. The y axis grows downward,
// meaning bottom > top.
type Rect struct {
	X, Y, Width, Height Fl
}

// Canvas receives the drawing operations of a laid out document, in
// document order : an operation paints over those received before it.
type Canvas interface {
	// DrawRect fills `rect` with `color`. Fully transparent fills
	// are not emitted.
	DrawRect(rect Rect, color pa.RGBA)

	// DrawText draws one text run in `font`, `rect` being the
	// fragment box computed by the layout. The content never holds a
	// newline : line breaking already happened.
	DrawText(rect Rect, content string, font text.FontDescription, color pa.RGBA)
}
