// Package text splits text into lines, measuring it with the
// available fonts.
//
// Line break opportunities are computed by pango, following the
// Unicode line breaking rules : text written in scripts with word
// separators breaks at spaces, while scripts written without them,
// such as Chinese or Japanese, may break between any two characters.
package text

import (
	"strings"

	"github.com/benoitkugler/textprocessing/pango"
	pr "github.com/go-galley/galley/css/properties"
)

// Splitted exposes the result of laying out
// one line of text
type Splitted struct {
	// Length is the number of runes in the first line,
	// trailing spaces excluded.
	Length int

	// ResumeAt is the number of runes to skip for the next line.
	// May be -1 if the whole text fits in one line.
	// This may be greater than `Length` when the line
	// breaks after collapsible spaces.
	ResumeAt int

	// Width is the advance in pixels of the first line,
	// trailing spaces excluded.
	Width pr.Fl

	// Height is the height in pixels of the first line.
	Height pr.Fl

	// Baseline is the distance in pixels from the top
	// of the first line to its baseline.
	Baseline pr.Fl
}

// pango interprets bidi marks as zero width spaces
var bidiMarkReplacer = strings.NewReplacer(
	"‪", "​",
	"‫", "​",
	"‬", "​",
	"‭", "​",
	"‮", "​",
)

// SplitBreakableUnits cuts `text` into the smallest chunks that may
// not be broken across lines. A break is permitted after each unit :
// words keep their trailing spaces, and characters of scripts written
// without word separators form one unit each.
func SplitBreakableUnits(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	attrs := pango.ComputeCharacterAttributes([]rune(bidiMarkReplacer.Replace(text)), -1)
	var (
		out   []string
		start int
	)
	for i := 1; i < len(runes); i++ {
		if attrs[i].IsLineBreak() {
			out = append(out, string(runes[start:i]))
			start = i
		}
	}
	return append(out, string(runes[start:]))
}

// CanBreakText returns whether there is a line break
// opportunity strictly inside `t`.
func CanBreakText(t []rune) bool {
	if len(t) < 2 {
		return false
	}
	attrs := pango.ComputeCharacterAttributes([]rune(bidiMarkReplacer.Replace(string(t))), -1)
	for _, attr := range attrs[1:len(t)] {
		if attr.IsLineBreak() {
			return true
		}
	}
	return false
}

// SplitFirstLine fits as much of `text` as possible in the available
// width for one line, and returns the metrics of that first line.
//
// Whole breakable units are added while they fit in `maxWidth`; the
// spaces a unit ends with are not counted against the available
// width. When even the first unit overflows, it fills the line alone
// if `isLineStart` is true; otherwise nothing is consumed and
// ResumeAt is 0, meaning the caller should start a new line before
// retrying.
func SplitFirstLine(fonts FontConfiguration, font FontDescription, text string,
	maxWidth pr.Fl, isLineStart bool,
) Splitted {
	var (
		units    = SplitBreakableUnits(text)
		line     string
		resumeAt = -1
	)
	for i, unit := range units {
		candidate := line + unit
		width := fonts.TextWidth(font, strings.TrimRight(candidate, " "))
		if width <= maxWidth {
			line = candidate
			continue
		}
		if line == "" {
			if !isLineStart {
				return Splitted{ResumeAt: 0}
			}
			// an unbreakable unit wider than the available
			// width still fills the line, alone
			line = unit
			if i+1 < len(units) {
				resumeAt = len([]rune(line))
			}
		} else {
			resumeAt = len([]rune(line))
		}
		break
	}

	trimmed := strings.TrimRight(line, " ")
	metrics := fonts.Metrics(font)
	return Splitted{
		Length:   len([]rune(trimmed)),
		ResumeAt: resumeAt,
		Width:    fonts.TextWidth(font, trimmed),
		Height:   metrics.LineHeight(),
		Baseline: metrics.Ascent,
	}
}
