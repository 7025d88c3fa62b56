package text

import (
	pr "github.com/go-galley/galley/css/properties"
	"golang.org/x/text/width"
)

// FontConfigurationFixed is a text engine with metrics derived from
// simple rules instead of real font files : every glyph advances by
// half the font size, doubled for East Asian wide characters. It
// needs no system font and gives reproducible measures, making it
// suitable for tests and headless environments.
type FontConfigurationFixed struct{}

// TextWidth implements FontConfiguration. The font family, weight
// and style do not change the advance, only the size does.
func (FontConfigurationFixed) TextWidth(font FontDescription, text string) pr.Fl {
	var ems pr.Fl
	for _, r := range text {
		ems += runeAdvance(r)
	}
	return ems * font.Size
}

// runeAdvance returns the advance of `r`, in ems.
func runeAdvance(r rune) pr.Fl {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 1
	default:
		return 0.5
	}
}

// Metrics implements FontConfiguration : the ascent is three quarters
// of the font size, the descent one quarter.
func (FontConfigurationFixed) Metrics(font FontDescription) FontMetrics {
	return FontMetrics{
		Ascent:  0.75 * font.Size,
		Descent: 0.25 * font.Size,
	}
}
