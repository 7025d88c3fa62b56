package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-galley/galley/logger"
	"github.com/go-galley/galley/utils"

	pa "github.com/go-galley/galley/css/parser"
	pr "github.com/go-galley/galley/css/properties"
)

// Expand shorthands and validate property values.
// See http://www.w3.org/TR/CSS21/propidx.html and various CSS3 modules.

var (
	ErrInvalidValue = errors.New("invalid or unsupported values for a known CSS property")

	LENGTHUNITS = map[string]pr.Unit{"px": pr.Px, "pt": pr.Pt, "pc": pr.Pc, "in": pr.In, "cm": pr.Cm, "mm": pr.Mm, "q": pr.Q}

	// validators take a non empty list of tokens with the whitespace
	// removed, and return nil for invalid values.
	validators = [...]validator{
		pr.PBackgroundColor: otherColors,
		pr.PDisplay:         display,
		pr.PFontFamily:      fontFamily,
		pr.PFontSize:        fontSize,
		pr.PFontStyle:       fontStyle,
		pr.PFontWeight:      fontWeight,
		pr.PMarginTop:       lengthOrAuto,
		pr.PMarginRight:     lengthOrAuto,
		pr.PMarginBottom:    lengthOrAuto,
		pr.PMarginLeft:      lengthOrAuto,
		pr.PWidth:           widthHeight,
		pr.PHeight:          widthHeight,
	}
)

type Token = pa.Token

type validator func(tokens []Token, baseUrl string) pr.CssProperty

// ValidateKnown validates one known, non shorthand, property.
// A nil value means the tokens are invalid for this property.
func ValidateKnown(name pr.KnownProp, tokens []Token, baseUrl string) (pr.DeclaredValue, error) {
	if name == pr.PColor { // special case to handle currentColor
		return color(tokens, ""), nil
	}

	var value pr.CssProperty
	if function := validators[name]; function != nil {
		value = function(tokens, baseUrl)
	}
	return value, nil
}

// Default validator for non-shorthand properties.
func validateNonShorthand(baseUrl, name string, tokens []Token, required bool) (out namedProperty, err error) {
	prop, known := pr.PropsFromNames[name]
	if !required && !known {
		return out, fmt.Errorf("unknown property %s", name)
	}

	var value pr.DeclaredValue
	keyword := getSingleKeyword(tokens)
	if keyword == "initial" || keyword == "inherit" {
		value = pr.NewDefaultValue(keyword)
	} else {
		value, err = ValidateKnown(prop, tokens, baseUrl)
		if err != nil {
			return out, err
		}
		if value == nil {
			return out, ErrInvalidValue
		}
	}

	return namedProperty{name: prop, property: value}, nil
}

// Declaration is the input form of a CSS property, containing
// a validated value.
type Declaration struct {
	Value pr.DeclaredValue
	Name  pr.KnownProp

	Important bool
}

// PreprocessDeclarations filters out unsupported properties and values,
// and expands shorthand properties.
//
// Log a warning for every ignored declaration.
func PreprocessDeclarations(baseUrl string, declarations []pa.Compound) []Declaration {
	var out []Declaration
	for _, decl := range declarations {
		if errToken, ok := decl.(pa.ParseError); ok {
			logger.WarningLogger.Printf("Error: %s \n", errToken.Message)
		}

		declaration, ok := decl.(pa.Declaration)
		if !ok {
			continue
		}

		name := utils.AsciiLower(declaration.Name)

		validationError := func(reason string) {
			logger.WarningLogger.Printf("Ignored `%s:%s` , %s. \n", declaration.Name, pa.Serialize(declaration.Value), reason)
		}

		tokens := pa.RemoveWhitespace(declaration.Value)

		// Having no tokens is allowed by the grammar but refused by
		// all properties and expanders.
		if len(tokens) == 0 {
			validationError("no value")
			continue
		}

		var (
			result []namedProperty
			err    error
		)
		if expander, in := expanders[name]; in {
			result, err = expander(baseUrl, name, tokens)
		} else {
			var np namedProperty
			np, err = validateNonShorthand(baseUrl, name, tokens, false)
			result = []namedProperty{np}
		}

		if err != nil {
			validationError(err.Error())
			continue
		}

		for _, np := range result {
			out = append(out, Declaration{
				Name:      np.name,
				Value:     np.property,
				Important: declaration.Important,
			})
		}
	}
	return out
}

// If `token` is a keyword, return its lowercase name.
// Otherwise return the empty string.
func getKeyword(token Token) string {
	if ident, ok := token.(pa.Ident); ok {
		return utils.AsciiLower(ident.Value)
	}
	return ""
}

// If `tokens` is a 1-element list of keywords, return its name.
// Otherwise return the empty string.
func getSingleKeyword(tokens []Token) string {
	if len(tokens) == 1 {
		return getKeyword(tokens[0])
	}
	return ""
}

// Get the length of the given token, or the zero Dimension.
// Lengths are rejected when negative, unless `negative` is true.
func getLength(token Token, negative bool) pr.Dimension {
	switch token := token.(type) {
	case pa.Dimension:
		unit, isKnown := LENGTHUNITS[token.Unit]
		if isKnown && (negative || token.Value >= 0) {
			return pr.NewDim(pr.Float(token.Value), unit)
		}
	case pa.Number:
		if token.Value == 0 {
			return pr.NewDim(0, pr.Scalar)
		}
	}
	return pr.Dimension{}
}

// @validator("color")
// @singleToken
// “color“ property validation.
func color(tokens []Token, _ string) pr.DeclaredValue {
	if len(tokens) != 1 {
		return nil
	}
	result := pa.ParseColor(tokens[0])
	if result.Type == pa.ColorCurrentColor {
		// currentColor on "color" means "inherit the parent color"
		return pr.Inherit
	} else if !result.IsNone() {
		return pr.Color(result)
	}
	return nil
}

// @validator("background-color")
// @singleToken
func otherColors(tokens []Token, _ string) pr.CssProperty {
	if len(tokens) == 1 {
		c := pa.ParseColor(tokens[0])
		if !c.IsNone() {
			return pr.Color(c)
		}
	}
	return nil
}

// @validator()
// @singleKeyword
// “display“ property validation.
func display(tokens []Token, _ string) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "block", "inline", "none":
		return pr.Display(keyword)
	default:
		return nil
	}
}

func _fontFamily(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	if tt, ok := tokens[0].(pa.String); len(tokens) == 1 && ok {
		return tt.Value
	}
	var values []string
	for _, token := range tokens {
		if tt, ok := token.(pa.Ident); ok {
			values = append(values, tt.Value)
		} else {
			return ""
		}
	}
	return strings.Join(values, " ")
}

// @validator()
// @commaSeparatedList
// “font-family“ property validation.
func fontFamily(tokens []Token, _ string) pr.CssProperty {
	var out pr.Strings
	for _, part := range pa.SplitOnComma(tokens) {
		result := _fontFamily(pa.RemoveWhitespace(part))
		if result == "" {
			return nil
		}
		out = append(out, result)
	}
	return out
}

// @validator()
// @singleToken
// “font-size“ property validation.
func fontSize(tokens []Token, _ string) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	if length := getLength(token, false); !length.IsNone() && length.Unit != pr.Scalar {
		return length.ToValue()
	}
	if size, isIn := pr.FontSizeKeywords[getKeyword(token)]; isIn {
		return pr.FToV(pr.Fl(size))
	}
	return nil
}

// @validator()
// @singleKeyword
// “font-style“ property validation.
func fontStyle(tokens []Token, _ string) pr.CssProperty {
	switch keyword := getSingleKeyword(tokens); keyword {
	case "normal", "italic", "oblique":
		return pr.String(keyword)
	default:
		return nil
	}
}

// @validator()
// @singleToken
// “font-weight“ property validation.
func fontWeight(tokens []Token, _ string) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	switch getKeyword(token) {
	case "normal":
		return pr.Int(400)
	case "bold":
		return pr.Int(700)
	}
	if number, ok := token.(pa.Number); ok && number.IsInteger {
		switch v := number.Int(); v {
		case 100, 200, 300, 400, 500, 600, 700, 800, 900:
			return pr.Int(v)
		}
	}
	return nil
}

// @validator("margin-top")
// @validator("margin-right")
// @validator("margin-bottom")
// @validator("margin-left")
// @singleToken
func lengthOrAuto(tokens []Token, _ string) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	if length := getLength(token, true); !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(token) == "auto" {
		return pr.SToV("auto")
	}
	return nil
}

// @validator("height")
// @validator("width")
// @singleToken
// Validation for the “width“ and “height“ properties.
func widthHeight(tokens []Token, _ string) pr.CssProperty {
	if len(tokens) != 1 {
		return nil
	}
	token := tokens[0]
	if length := getLength(token, false); !length.IsNone() {
		return length.ToValue()
	}
	if getKeyword(token) == "auto" {
		return pr.SToV("auto")
	}
	return nil
}
