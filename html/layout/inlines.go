package layout

import (
	"strings"

	pr "github.com/go-galley/galley/css/properties"
	bo "github.com/go-galley/galley/html/boxes"
	"github.com/go-galley/galley/text"
	"github.com/go-galley/galley/utils"
)

// Layout for inline content : text runs are broken into lines, whose
// fragments share a common baseline.

// lineBoxLayout breaks the text runs of the block `box_` into lines,
// returning the line boxes and the height they occupy.
func lineBoxLayout(context *layoutContext, box_ Box) ([]Box, pr.Fl) {
	box := box_.Box()
	builder := lineBuilder{
		context:   context,
		block:     box_,
		maxWidth:  box.Width,
		positionX: box.PositionX,
		positionY: box.PositionY,
	}
	for _, run := range box.Children {
		builder.pushRun(run.(*bo.TextBox))
	}
	builder.flush()
	return builder.lines, builder.positionY - box.PositionY
}

// lineBuilder accumulates text fragments on the line being built, and
// closes it when a break is taken.
type lineBuilder struct {
	context *layoutContext
	block   Box // the block whose lines are being built

	maxWidth             pr.Fl
	positionX, positionY pr.Fl // top left corner of the next line

	lines []Box

	// state of the line being built
	fragments  []Box
	ascents    []pr.Fl
	cursorX    pr.Fl // writing position, relative to the line start
	lineWidth  pr.Fl // rightmost fragment edge, trailing spaces excluded
	maxAscent  pr.Fl
	maxDescent pr.Fl
}

func (b *lineBuilder) isLineStart() bool {
	return b.cursorX == 0 && len(b.fragments) == 0
}

// pushRun fits the run on the current line, breaking it into
// fragments spread over as many lines as needed. The run's own font
// drives its measures; break opportunities do not depend on it.
func (b *lineBuilder) pushRun(run *bo.TextBox) {
	font := text.NewFontDescription(run.Style, b.context.lang)
	rest := run.Text
	if b.isLineStart() {
		rest = strings.TrimLeft(rest, " ")
	}
	for rest != "" {
		split := text.SplitFirstLine(b.context.fonts, font, rest, b.maxWidth-b.cursorX, b.isLineStart())
		if split.ResumeAt == 0 {
			// no room left on this line : retry on a fresh one
			b.flush()
			rest = strings.TrimLeft(rest, " ")
			continue
		}
		runes := []rune(rest)
		if split.Length > 0 {
			b.place(run, string(runes[:split.Length]), split)
		}
		if split.ResumeAt == -1 {
			// the whole run fits : the line goes on, trailing
			// spaces moving the cursor without entering a fragment
			b.cursorX += b.context.fonts.TextWidth(font, rest)
			return
		}
		b.flush()
		rest = strings.TrimLeft(string(runes[split.ResumeAt:]), " ")
	}
}

// place adds a fragment of `run` to the current line, at the cursor.
// Its vertical position is set when the line is closed and the common
// baseline known.
func (b *lineBuilder) place(run *bo.TextBox, content string, split text.Splitted) {
	fragment := run.CopyWithText(content)
	fragment.PositionX = b.positionX + b.cursorX
	fragment.Width = split.Width
	fragment.Height = split.Height
	b.fragments = append(b.fragments, fragment)
	b.ascents = append(b.ascents, split.Baseline)

	b.lineWidth = utils.MaxF(b.lineWidth, b.cursorX+split.Width)
	b.maxAscent = utils.MaxF(b.maxAscent, split.Baseline)
	b.maxDescent = utils.MaxF(b.maxDescent, split.Height-split.Baseline)
}

// flush closes the current line, aligning its fragments on the common
// baseline. A line with no fragment is dropped.
func (b *lineBuilder) flush() {
	defer func() {
		b.fragments, b.ascents = nil, nil
		b.cursorX, b.lineWidth, b.maxAscent, b.maxDescent = 0, 0, 0, 0
	}()
	if len(b.fragments) == 0 {
		return
	}

	line := bo.LineBoxAnonymousFrom(b.block, b.fragments)
	line.PositionX = b.positionX
	line.PositionY = b.positionY
	line.Width = b.lineWidth
	line.Height = b.maxAscent + b.maxDescent
	line.Baseline = b.maxAscent
	for i, fragment := range b.fragments {
		fragment.Box().PositionY = b.positionY + b.maxAscent - b.ascents[i]
	}

	b.positionY += line.Height
	b.lines = append(b.lines, line)
}
