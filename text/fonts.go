package text

import (
	"strings"

	pr "github.com/go-galley/galley/css/properties"
)

// FontStyle is the slope of a font face.
type FontStyle uint8

const (
	FSyNormal FontStyle = iota
	FSyOblique
	FSyItalic
)

func newFontStyle(style pr.String) FontStyle {
	switch strings.ToLower(string(style)) {
	case "", "roman", "normal":
		return FSyNormal
	case "oblique":
		return FSyOblique
	case "italic":
		return FSyItalic
	default:
		return FSyNormal
	}
}

// FontDescription stores the settings influencing
// font selection and text measurement.
type FontDescription struct {
	Family []string
	Lang   string // BCP 47 tag of the content language, or ""

	Size   pr.Fl // in pixels
	Weight uint16
	Style  FontStyle
}

// NewFontDescription extracts from `style` the settings needed to
// select a font face. `lang` is the language of the content, used
// by engines supporting language specific rendering.
func NewFontDescription(style pr.StyleAccessor, lang string) FontDescription {
	return FontDescription{
		Family: style.GetFontFamily(),
		Lang:   lang,
		Size:   pr.Fl(style.GetFontSize().Value),
		Weight: uint16(style.GetFontWeight()),
		Style:  newFontStyle(style.GetFontStyle()),
	}
}

// FontMetrics describes the vertical extents of a font face
// at a given size, in pixels.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent pr.Fl
	// Descent is the distance from the baseline to the bottom of the line.
	Descent pr.Fl
}

// LineHeight returns the advance between the baselines of two
// consecutive lines.
func (m FontMetrics) LineHeight() pr.Fl { return m.Ascent + m.Descent }

// FontConfiguration holds information about the available fonts.
// It is used to measure text at various steps of the rendering process.
//
// It is implemented by text engines : pango, shaping text with the
// system fonts, or a fixed metrics engine suitable for tests.
type FontConfiguration interface {
	// TextWidth returns the advance of `text` laid out
	// on one line with `font`, in pixels.
	TextWidth(font FontDescription, text string) pr.Fl

	// Metrics returns the vertical metrics of the face
	// selected for `font`.
	Metrics(font FontDescription) FontMetrics
}
