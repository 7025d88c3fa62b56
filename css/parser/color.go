package parser

import (
	"strconv"

	"github.com/go-galley/galley/utils"
)

// ColorType identifies the variant of a parsed color.
type ColorType uint8

const (
	// ColorInvalid is an empty or invalid color specification.
	ColorInvalid ColorType = iota
	// ColorCurrentColor represents the special value "currentColor",
	// resolved against the "color" property during the cascade.
	ColorCurrentColor
	// ColorRGBA is a concrete color, with values in the RGBA field.
	ColorRGBA
)

// RGBA is a color with [0..1] channels, alpha included.
type RGBA struct {
	R, G, B, A utils.Fl
}

// Unpack returns the components of the color.
func (color RGBA) Unpack() (r, g, b, a utils.Fl) {
	return color.R, color.G, color.B, color.A
}

func (color RGBA) IsNone() bool {
	return color == RGBA{}
}

// Color is the result of parsing a color token.
type Color struct {
	Type ColorType
	RGBA RGBA
}

func (c Color) IsNone() bool {
	return c.Type == ColorInvalid
}

// The 16 basic CSS color keywords, plus a few widely used extensions.
// Unknown names are invalid and dropped by validation.
var colorKeywords = map[string]RGBA{
	"black":   {0, 0, 0, 1},
	"silver":  {0.7529412, 0.7529412, 0.7529412, 1}, // #c0c0c0
	"gray":    {0.5019608, 0.5019608, 0.5019608, 1}, // #808080
	"grey":    {0.5019608, 0.5019608, 0.5019608, 1},
	"white":   {1, 1, 1, 1},
	"maroon":  {0.5019608, 0, 0, 1},         // #800000
	"red":     {1, 0, 0, 1},                 // #ff0000
	"purple":  {0.5019608, 0, 0.5019608, 1}, // #800080
	"fuchsia": {1, 0, 1, 1},                 // #ff00ff
	"green":   {0, 0.5019608, 0, 1},         // #008000
	"lime":    {0, 1, 0, 1},                 // #00ff00
	"olive":   {0.5019608, 0.5019608, 0, 1}, // #808000
	"yellow":  {1, 1, 0, 1},                 // #ffff00
	"navy":    {0, 0, 0.5019608, 1},         // #000080
	"blue":    {0, 0, 1, 1},                 // #0000ff
	"teal":    {0, 0.5019608, 0.5019608, 1}, // #008080
	"aqua":    {0, 1, 1, 1},                 // #00ffff
	"orange":  {1, 0.64705884, 0, 1},        // #ffa500

	"rebeccapurple": {0.4, 0.2, 0.6, 1}, // #663399
}

// ParseColorString tokenizes the input and parses
// the first significant token as a color.
func ParseColorString(color string) Color {
	tokens := tokenizeString(color, true)
	token := NewIter(tokens).NextSignificant()
	if token == nil {
		return Color{}
	}
	return ParseColor(token)
}

// ParseColor parses a color from one token, returning the
// zero Color for anything outside the supported subset
// (keywords and hex notations).
func ParseColor(token Token) Color {
	switch token := token.(type) {
	case Ident:
		switch lower := utils.AsciiLower(token.Value); lower {
		case "currentcolor":
			return Color{Type: ColorCurrentColor}
		case "transparent":
			return Color{Type: ColorRGBA} // all zero RGBA
		default:
			if rgba, in := colorKeywords[lower]; in {
				return Color{Type: ColorRGBA, RGBA: rgba}
			}
		}
	case Hash:
		if token.IsIdentifier || isHex(token.Value) {
			return parseHexColor(token.Value)
		}
	}
	return Color{}
}

func isHex(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return len(s) != 0
}

// parseHexColor supports the #rgb, #rgba, #rrggbb and #rrggbbaa notations.
func parseHexColor(hexa string) Color {
	if !isHex(hexa) {
		return Color{}
	}
	var channels [4]utils.Fl
	channels[3] = 1 // opaque unless an alpha digit group is present
	switch len(hexa) {
	case 3, 4:
		for i := 0; i < len(hexa); i++ {
			v, _ := strconv.ParseUint(string([]byte{hexa[i], hexa[i]}), 16, 8)
			channels[i] = utils.Fl(v) / 255
		}
	case 6, 8:
		for i := 0; i*2 < len(hexa); i++ {
			v, _ := strconv.ParseUint(hexa[i*2:i*2+2], 16, 8)
			channels[i] = utils.Fl(v) / 255
		}
	default:
		return Color{}
	}
	return Color{Type: ColorRGBA, RGBA: RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}}
}
