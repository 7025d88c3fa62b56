package backend

import (
	bo "github.com/go-galley/galley/html/boxes"
	"github.com/go-galley/galley/text"
)

// Paint emits the drawing operations of the laid out `box` and its
// descendants on `dst`, in document order : every box fills its
// background first, then its content paints over it.
func Paint(dst Canvas, box bo.Box) {
	b := box.Box()
	rect := Rect{X: b.PositionX, Y: b.PositionY, Width: b.Width, Height: b.Height}

	if bg := b.Style.GetBackgroundColor(); bg.RGBA.A != 0 {
		dst.DrawRect(rect, bg.RGBA)
	}
	if run, ok := box.(*bo.TextBox); ok {
		dst.DrawText(rect, run.Text, text.NewFontDescription(run.Style, ""),
			run.Style.GetColor().RGBA)
	}

	for _, child := range b.Children {
		Paint(dst, child)
	}
}
