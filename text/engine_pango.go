package text

import (
	"strings"

	"github.com/benoitkugler/textlayout/fonts"
	"github.com/benoitkugler/textlayout/language"
	fc "github.com/benoitkugler/textprocessing/fontconfig"
	"github.com/benoitkugler/textprocessing/pango"
	"github.com/benoitkugler/textprocessing/pango/fcfonts"
	pr "github.com/go-galley/galley/css/properties"
)

func PangoUnitsFromFloat(v pr.Fl) int32 { return int32(v*pango.Scale + 0.5) }

func PangoUnitsToFloat(v pango.Unit) pr.Fl { return pr.Fl(v) / pango.Scale }

// FontConfigurationPango holds a database of the fonts
// available on the system, and measures text by shaping
// it with pango.
type FontConfigurationPango struct {
	fontmap *fcfonts.FontMap

	faces map[fonts.FaceID]fonts.Face // font files already parsed
}

// NewFontConfigurationPango uses a fontconfig database to create a new
// font configuration
func NewFontConfigurationPango(fontmap *fcfonts.FontMap) *FontConfigurationPango {
	out := &FontConfigurationPango{
		fontmap: fontmap,
		faces:   make(map[fonts.FaceID]fonts.Face),
	}
	out.fontmap.SetFaceLoader(out)
	return out
}

// LoadFace implements the face loader of the fontmap,
// caching the parsed font files.
func (f *FontConfigurationPango) LoadFace(key fonts.FaceID, format fc.FontFormat) (fonts.Face, error) {
	if face, has := f.faces[key]; has {
		return face, nil
	}
	face, err := fcfonts.DefaultLoadFace(key, format)
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}

// TextWidth returns the advance of `text` on one line, shaped with
// the faces selected for `font`.
func (f *FontConfigurationPango) TextWidth(font FontDescription, text string) pr.Fl {
	layout := f.layout(font)
	layout.SetText(text)
	line := layout.GetLine(0)
	var logicalExtents pango.Rectangle
	line.GetExtents(nil, &logicalExtents)
	return PangoUnitsToFloat(logicalExtents.Width)
}

// Metrics returns the metrics of the first face selected for `font`.
func (f *FontConfigurationPango) Metrics(font FontDescription) FontMetrics {
	pc, lang := f.context(font)
	fontDesc := getFontDescription(font)
	metrics := pc.GetMetrics(&fontDesc, lang)
	return FontMetrics{
		Ascent:  PangoUnitsToFloat(metrics.Ascent),
		Descent: PangoUnitsToFloat(metrics.Descent),
	}
}

func (f *FontConfigurationPango) context(font FontDescription) (*pango.Context, pango.Language) {
	pc := pango.NewContext(f.fontmap)
	pc.SetRoundGlyphPositions(false)

	var lang pango.Language
	if lg := font.Lang; lg != "" {
		lang = language.NewLanguage(lg)
	} else {
		lang = pango.DefaultLanguage()
	}
	pc.SetLanguage(lang)
	return pc, lang
}

func (f *FontConfigurationPango) layout(font FontDescription) *pango.Layout {
	pc, _ := f.context(font)
	fontDesc := getFontDescription(font)
	layout := pango.NewLayout(pc)
	layout.SetFontDescription(&fontDesc)
	return layout
}

func getFontDescription(fd FontDescription) pango.FontDescription {
	fontDesc := pango.NewFontDescription()
	fontDesc.SetFamily(strings.Join(fd.Family, ","))

	fontDesc.SetStyle(pango.Style(fd.Style))
	fontDesc.SetWeight(pango.Weight(fd.Weight))

	fontDesc.SetAbsoluteSize(PangoUnitsFromFloat(fd.Size))

	return fontDesc
}
