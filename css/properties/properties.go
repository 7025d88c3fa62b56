package properties

import "github.com/go-galley/galley/css/parser"

const (
	_ KnownProp = iota
	PColor
	PDisplay

	// the following properties are grouped by side,
	// in the [bottom, left, right, top] order
	PMarginBottom
	PMarginLeft
	PMarginRight
	PMarginTop

	PFontFamily
	PFontSize
	PFontStyle
	PFontWeight

	PBackgroundColor

	PHeight
	PWidth
)

var propsNames = [...]string{
	PColor:           "color",
	PDisplay:         "display",
	PMarginBottom:    "margin-bottom",
	PMarginLeft:      "margin-left",
	PMarginRight:     "margin-right",
	PMarginTop:       "margin-top",
	PFontFamily:      "font-family",
	PFontSize:        "font-size",
	PFontStyle:       "font-style",
	PFontWeight:      "font-weight",
	PBackgroundColor: "background-color",
	PHeight:          "height",
	PWidth:           "width",
}

// PropsFromNames maps CSS property names to internal enum tags.
var PropsFromNames = map[string]KnownProp{
	"color":            PColor,
	"display":          PDisplay,
	"margin-bottom":    PMarginBottom,
	"margin-left":      PMarginLeft,
	"margin-right":     PMarginRight,
	"margin-top":       PMarginTop,
	"font-family":      PFontFamily,
	"font-size":        PFontSize,
	"font-style":       PFontStyle,
	"font-weight":      PFontWeight,
	"background-color": PBackgroundColor,
	"height":           PHeight,
	"width":            PWidth,
}

// InitialValues stores the default values for the CSS properties.
var InitialValues = Properties{
	// CSS 2.1: https://www.w3.org/TR/CSS21/propidx.html
	PColor:   Color(parser.ParseColorString("black")), // chosen by the user agent
	PDisplay: DInline,

	PMarginTop:    zeroPixelsValue,
	PMarginRight:  zeroPixelsValue,
	PMarginBottom: zeroPixelsValue,
	PMarginLeft:   zeroPixelsValue,

	// Fonts 3 (REC): https://www.w3.org/TR/css-fonts-3/
	PFontFamily: Strings{"serif"}, // depends on user agent
	PFontSize:   FToV(16),         // actually medium, but we define medium from this
	PFontStyle:  String("normal"),
	PFontWeight: Int(400),

	// Backgrounds and Borders 3 (CR): https://www.w3.org/TR/css-backgrounds-3/
	PBackgroundColor: Color(parser.ParseColorString("transparent")),

	// Sizing 3 (WD): https://www.w3.org/TR/css-sizing-3/
	PHeight: SToV("auto"),
	PWidth:  SToV("auto"),
}

var (
	ZeroPixels      = Dimension{Unit: Px}
	zeroPixelsValue = ZeroPixels.ToValue()

	CurrentColor = Color{Type: parser.ColorCurrentColor}

	// How many CSS pixels is one <unit>?
	// http://www.w3.org/TR/CSS21/syndata.html#length-units
	LengthsToPixels = map[Unit]Float{
		Px: 1,
		Pt: 1. / 0.75,
		Pc: 16.,             // LengthsToPixels["pt"] * 12
		In: 96.,             // LengthsToPixels["pt"] * 72
		Cm: 96. / 2.54,      // LengthsToPixels["in"] / 2.54
		Mm: 96. / 25.4,      // LengthsToPixels["in"] / 25.4
		Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
	}

	// Value in pixels of font-size for <absolute-size> keywords: 12pt (16px) for
	// medium, and scaling factors given in CSS3 for others:
	// http://www.w3.org/TR/css3-fonts/#font-size-prop
	FontSizeKeywords = map[string]Float{ // medium is 16px, others are a ratio of medium
		"xx-small": InitialValues.GetFontSize().Value * 3 / 5,
		"x-small":  InitialValues.GetFontSize().Value * 3 / 4,
		"small":    InitialValues.GetFontSize().Value * 8 / 9,
		"medium":   InitialValues.GetFontSize().Value * 1 / 1,
		"large":    InitialValues.GetFontSize().Value * 6 / 5,
		"x-large":  InitialValues.GetFontSize().Value * 3 / 2,
		"xx-large": InitialValues.GetFontSize().Value * 2 / 1,
	}

	KnownProperties = NewSetK()

	// Do not list shorthand properties here as we handle them before inheritance.
	Inherited = NewSetK(
		PColor,
		PFontFamily,
		PFontSize,
		PFontStyle,
		PFontWeight,
	)
)

func init() {
	for name := range InitialValues {
		KnownProperties.Add(name)
	}
}
